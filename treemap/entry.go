package treemap

import "github.com/amp-labs/amp-ordered/sortable"

// KeyValuePair is a generic key-value pair struct used to represent entries
// in the map. It is returned by Entry, FindFirst, Min, and Max as a snapshot
// of a stored entry: mutating the pair does not affect the map.
//
// The Key must implement the sortable.Sortable interface, while the Value can
// be any type.
type KeyValuePair[K sortable.Sortable[K], V any] struct {
	Key   K
	Value V
}
