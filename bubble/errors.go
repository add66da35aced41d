package bubble

import (
	"fmt"

	"github.com/sortkit/sortkit/item"
)

// ComparisonError reports a pair of adjacent elements that could not be
// ordered against each other, along with their positions in the slice being
// sorted. It wraps item.ErrIncomparable, so errors.Is(err,
// item.ErrIncomparable) holds.
type ComparisonError struct {
	LeftPos  int
	RightPos int
	Left     item.Item
	Right    item.Item
	err      error
}

// Compile-time check that ComparisonError implements error.
var _ error = (*ComparisonError)(nil)

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("cannot compare elements at positions %d and %d: %s (%s) vs %s (%s)",
		e.LeftPos, e.RightPos, e.Left, e.Left.Kind(), e.Right, e.Right.Kind())
}

// Unwrap returns the underlying comparison failure.
func (e *ComparisonError) Unwrap() error {
	return e.err
}
