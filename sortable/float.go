package sortable

// Float is a sortable wrapper type for the built-in float64 type.
type Float float64

// Compile-time check that Float implements Sortable[Float].
var _ Sortable[Float] = (*Float)(nil)

// Equals returns true if this Float has the same value as the other Float.
func (f Float) Equals(other Float) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float is numerically less than the other Float.
func (f Float) LessThan(other Float) bool {
	return float64(f) < float64(other)
}
