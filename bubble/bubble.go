// Package bubble implements bubble sort over typed items.
//
// [Sort] works on item.Item slices and reports a [ComparisonError] when two
// elements cannot be ordered against each other. [SortOf] is the generic
// variant for element types that implement sortable.Sortable, where the
// compiler rules incomparable pairs out entirely.
package bubble

import (
	"github.com/sortkit/sortkit/item"
	"github.com/sortkit/sortkit/sortable"
)

type options struct {
	descending bool
	inPlace    bool
	compare    item.Comparer
}

// Option configures a Sort call.
type Option func(*options)

// Descending sorts largest-first instead of smallest-first.
func Descending() Option {
	return func(o *options) {
		o.descending = true
	}
}

// InPlace makes Sort mutate the given slice and return it, instead of
// sorting a copy.
func InPlace() Option {
	return func(o *options) {
		o.inPlace = true
	}
}

// WithComparer replaces the default ordering (item.Order) for this call.
func WithComparer(cmp item.Comparer) Option {
	return func(o *options) {
		o.compare = cmp
	}
}

// Sort orders items with bubble sort: repeated passes over the slice,
// swapping adjacent out-of-order pairs, until a full pass makes no swap.
//
// By default Sort leaves the input slice untouched and returns a sorted
// copy; pass InPlace() to sort the given slice itself. When two elements
// cannot be ordered against each other, Sort returns a *ComparisonError
// naming both elements and their positions, and the result slice is nil
// (the input may be partially reordered if InPlace() was given).
func Sort(items []item.Item, opts ...Option) ([]item.Item, error) {
	o := options{compare: item.Order}
	for _, opt := range opts {
		opt(&o)
	}

	arr := items
	if !o.inPlace {
		arr = make([]item.Item, len(items))
		copy(arr, items)
	}

	n := len(arr)
	if n < 2 {
		return arr, nil
	}

	for i := 0; i < n-1; i++ {
		swapped := false

		// Last i elements are already in place.
		for j := 0; j < n-i-1; j++ {
			cmp, err := o.compare(arr[j], arr[j+1])
			if err != nil {
				return nil, &ComparisonError{
					LeftPos:  j,
					RightPos: j + 1,
					Left:     arr[j],
					Right:    arr[j+1],
					err:      err,
				}
			}

			if cmp != 0 && (cmp > 0) != o.descending {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return arr, nil
}

// SortOf orders a slice of Sortable elements with the same algorithm as
// Sort. It always sorts a copy and cannot fail: the element type's LessThan
// is total.
func SortOf[T sortable.Sortable[T]](items []T, descending bool) []T {
	arr := make([]T, len(items))
	copy(arr, items)

	n := len(arr)

	for i := 0; i < n-1; i++ {
		swapped := false

		for j := 0; j < n-i-1; j++ {
			outOfOrder := arr[j+1].LessThan(arr[j])
			if descending {
				outOfOrder = arr[j].LessThan(arr[j+1])
			}

			if outOfOrder {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return arr
}
