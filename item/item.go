// Package item provides the typed values the sorter operates on.
//
// An [Item] is a tagged union holding exactly one integer, floating point
// number, or string. The variant is fixed when the Item is built, so the
// question "can these two values be ordered against each other?" is settled
// by looking at the two kinds rather than discovered mid-comparison.
//
// [Parse] mirrors how the command line interprets tokens: integer first,
// then float, then string. "10" becomes an integer item, "2.5" a float item,
// and "apple" a string item.
package item

import (
	"strconv"
	"strings"

	"github.com/sortkit/sortkit/compare"
)

// Kind identifies which variant an Item holds.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Item is one sortable value. The zero value is the integer 0.
type Item struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Compile-time check that Item implements compare.Comparable[Item].
var _ compare.Comparable[Item] = Item{}

// Int builds an integer Item.
func Int(v int64) Item {
	return Item{kind: KindInt, i: v}
}

// Float builds a floating point Item.
func Float(v float64) Item {
	return Item{kind: KindFloat, f: v}
}

// String builds a string Item.
func String(v string) Item {
	return Item{kind: KindString, s: v}
}

// Parse interprets a single token. The token is trimmed, then tried as a
// base-10 integer, then as a float, and kept as a string if both fail.
func Parse(token string) Item {
	s := strings.TrimSpace(token)

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}

	return String(s)
}

// ParseAll parses every token in order.
func ParseAll(tokens []string) []Item {
	items := make([]Item, len(tokens))

	for i, tok := range tokens {
		items[i] = Parse(tok)
	}

	return items
}

// Kind returns the variant this Item holds.
func (it Item) Kind() Kind {
	return it.kind
}

// String renders the item the way it was typed: integers in base 10, floats
// in strconv's shortest 'g' form, strings verbatim.
func (it Item) String() string {
	switch it.kind {
	case KindInt:
		return strconv.FormatInt(it.i, 10)
	case KindFloat:
		return strconv.FormatFloat(it.f, 'g', -1, 64)
	case KindString:
		return it.s
	default:
		return ""
	}
}

// Equals reports whether two items order as equal. Items that cannot be
// ordered against each other are never equal.
func (it Item) Equals(other Item) bool {
	cmp, err := Compare(it, other)
	if err != nil {
		return false
	}

	return cmp == 0
}

// Join renders items separated by sep, in order.
func Join(items []Item, sep string) string {
	parts := make([]string, len(items))

	for i, it := range items {
		parts[i] = it.String()
	}

	return strings.Join(parts, sep)
}

// numeric returns the item's value as a float64 and whether the item is
// numeric at all.
func (it Item) numeric() (float64, bool) {
	switch it.kind {
	case KindInt:
		return float64(it.i), true
	case KindFloat:
		return it.f, true
	default:
		return 0, false
	}
}
