// Package sortable defines the ordering interface used by the generic
// bubble sorter, plus wrapper types for the primitives this tool sorts.
package sortable

import (
	"github.com/sortkit/sortkit/compare"
)

// Sortable extends compare.Comparable with an ordering relation. Types
// implementing it can be sorted with bubble.SortOf without a fallible
// comparison step: the compiler has already proven the elements comparable.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
