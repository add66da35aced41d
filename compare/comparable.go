// Package compare provides the equality half of the ordering interfaces.
package compare

// Comparable is a generic interface for types that can compare themselves
// for equality. Implementations decide what equality means for the type;
// sortkit's Item, for example, treats the integer 1 and the float 1.0 as
// equal because they order as equal.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
