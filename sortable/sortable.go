package sortable

// Sortable is the ordering contract for keys stored in sorted data
// structures such as the red-black tree map. Two keys are equivalent
// when Equals reports true; LessThan must define a strict weak ordering
// consistent with Equals (a.Equals(b) implies neither a.LessThan(b)
// nor b.LessThan(a)).
type Sortable[T any] interface {
	// Equals reports whether this value and other compare as equivalent.
	Equals(other T) bool

	// LessThan reports whether this value orders strictly before other.
	LessThan(other T) bool
}
