package item

import (
	"errors"
	"fmt"

	"facette.io/natsort"
)

// ErrIncomparable is returned when two items' kinds cannot be ordered
// against each other (a number against a string).
var ErrIncomparable = errors.New("items cannot be ordered against each other")

// Comparer orders two items. It returns a negative value when a sorts before
// b, zero when they are equal, and a positive value when a sorts after b.
type Comparer func(a, b Item) (int, error)

// Compare is the default ordering. Numeric items (int and float) compare
// against each other numerically, strings compare lexicographically, and a
// numeric item against a string item returns ErrIncomparable. Cross-kind
// coercion is never attempted.
func Compare(a, b Item) (int, error) {
	af, aNum := a.numeric()
	bf, bNum := b.numeric()

	switch {
	case aNum && bNum:
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	case !aNum && !bNum:
		switch {
		case a.s < b.s:
			return -1, nil
		case a.s > b.s:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, fmt.Errorf("%w: %s (%s) vs %s (%s)", ErrIncomparable, a, a.kind, b, b.kind)
	}
}

// Order is the Comparer used when no other is chosen.
var Order Comparer = Compare

// NaturalOrder orders string pairs naturally ("item2" before "item10") and
// everything else like Compare.
func NaturalOrder(a, b Item) (int, error) {
	if a.kind == KindString && b.kind == KindString {
		switch {
		case natsort.Compare(a.s, b.s):
			return -1, nil
		case natsort.Compare(b.s, a.s):
			return 1, nil
		default:
			return 0, nil
		}
	}

	return Compare(a, b)
}
