package sortable

import "facette.io/natsort"

// Natural is a sortable wrapper type for strings that orders values by
// natural-sort comparison rather than plain lexicographic comparison.
// Digit runs are compared numerically, so "item2" orders before "item10".
//
// Example:
//
//	m := treemap.New[sortable.Natural, int]()
//	m.Put(sortable.Natural("file10"), 10)
//	m.Put(sortable.Natural("file2"), 2)
//	// Iterating yields keys: "file2", "file10"
type Natural string

// Compile-time check that Natural implements Sortable[Natural].
var _ Sortable[Natural] = (*Natural)(nil)

// Equals returns true if this Natural has the same value as the other Natural.
func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if this Natural orders before the other Natural
// under natural-sort comparison.
func (n Natural) LessThan(other Natural) bool {
	if string(n) == string(other) {
		return false
	}

	return natsort.Compare(string(n), string(other))
}
