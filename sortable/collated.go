package sortable

import (
	"bytes"

	"golang.org/x/text/collate"
)

// Collated is a sortable wrapper type for strings ordered by a locale-aware
// collation. The collation sort key is computed once at construction, so
// comparisons are cheap byte comparisons and the value needs no reference
// back to its collator.
//
// Two Collated values built from different collators are comparable but the
// result is meaningless; keep a single collator per collection.
//
// Example:
//
//	col := collate.New(language.German)
//	m := treemap.New[sortable.Collated, int]()
//	m.Put(sortable.NewCollated(col, "Äpfel"), 1)
//	m.Put(sortable.NewCollated(col, "Zitronen"), 2)
type Collated struct {
	value string
	key   []byte
}

// Compile-time check that Collated implements Sortable[Collated].
var _ Sortable[Collated] = (*Collated)(nil)

// NewCollated wraps value with a sort key produced by col.
func NewCollated(col *collate.Collator, value string) Collated {
	var buf collate.Buffer

	key := col.KeyFromString(&buf, value)

	return Collated{
		value: value,
		key:   append([]byte(nil), key...),
	}
}

// Value returns the original string.
func (c Collated) Value() string {
	return c.value
}

// Equals returns true if the two values are equivalent under the collation
// that produced them.
func (c Collated) Equals(other Collated) bool {
	return bytes.Equal(c.key, other.key)
}

// LessThan returns true if this value orders before the other under the
// collation that produced them.
func (c Collated) LessThan(other Collated) bool {
	return bytes.Compare(c.key, other.key) < 0
}
