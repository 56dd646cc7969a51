package treemap

import (
	"iter"

	"github.com/amp-labs/amp-ordered/optional"
	"github.com/amp-labs/amp-ordered/sortable"
)

// visitor defines an interface for traversing red-black tree nodes.
// Implementations can perform custom operations during tree traversal
// (e.g., collecting keys or checking predicates).
// Visit returns false to stop traversal early.
type visitor[K sortable.Sortable[K], V any] interface {
	Visit(node *node[K, V]) bool
}

// walk traverses the tree using the provided visitor.
func (m *Map[K, V]) walk(visitor visitor[K, V]) {
	visitor.Visit(m.root)
}

// seqVisitor is a visitor implementation that yields key-value pairs in sorted order.
// It's used to implement the Seq method for range-based iteration.
type seqVisitor[K sortable.Sortable[K], V any] struct {
	yield func(K, V) bool
}

// Visit recursively traverses the tree in-order, yielding each key-value pair.
// Traversal stops early if yield returns false.
func (s *seqVisitor[K, V]) Visit(node *node[K, V]) bool {
	if node == nil {
		return true
	}

	if !s.Visit(node.left) {
		return false
	}

	if !s.yield(node.key, node.value) {
		return false
	}

	return s.Visit(node.right)
}

// Seq returns an iterator over the map's key-value pairs in sorted order (by key).
// This enables range-based iteration: for k, v := range m.Seq() { ... }.
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		visit := &seqVisitor[K, V]{yield: yield}

		m.walk(visit)
	}
}

// ForEach applies the given function to each key-value pair in the map.
// Entries are processed in sorted order by key.
func (m *Map[K, V]) ForEach(f func(key K, value V)) {
	for k, v := range m.Seq() {
		f(k, v)
	}
}

// ForAll returns true if the predicate returns true for all key-value pairs in the map.
// Returns true for an empty map.
func (m *Map[K, V]) ForAll(predicate func(key K, value V) bool) bool {
	for key, value := range m.Seq() {
		if !predicate(key, value) {
			return false
		}
	}

	return true
}

// Exists returns true if at least one key-value pair satisfies the predicate.
func (m *Map[K, V]) Exists(predicate func(key K, value V) bool) bool {
	for k, v := range m.Seq() {
		if predicate(k, v) {
			return true
		}
	}

	return false
}

// Filter returns a new map containing only entries for which the predicate returns true.
// The result carries the same logger as the source but is otherwise independent.
func (m *Map[K, V]) Filter(predicate func(key K, value V) bool) *Map[K, V] {
	filtered := New[K, V]()
	filtered.logger = m.logger

	for key, value := range m.Seq() {
		if predicate(key, value) {
			filtered.Put(key, value)
		}
	}

	return filtered
}

// FindFirst returns the first key-value pair (in sorted order) that satisfies the predicate.
// Returns None if no pair satisfies the predicate.
func (m *Map[K, V]) FindFirst(predicate func(key K, value V) bool) optional.Value[KeyValuePair[K, V]] {
	for k, v := range m.Seq() {
		if predicate(k, v) {
			return optional.Some(KeyValuePair[K, V]{
				Key:   k,
				Value: v,
			})
		}
	}

	return optional.None[KeyValuePair[K, V]]()
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)

	for k := range m.Seq() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all values, ordered by their keys ascending.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)

	for _, v := range m.Seq() {
		values = append(values, v)
	}

	return values
}

// Min returns the entry with the smallest key, or None for an empty map.
func (m *Map[K, V]) Min() optional.Value[KeyValuePair[K, V]] {
	if m.root == nil {
		return optional.None[KeyValuePair[K, V]]()
	}

	node := minimum(m.root)

	return optional.Some(KeyValuePair[K, V]{Key: node.key, Value: node.value})
}

// Max returns the entry with the largest key, or None for an empty map.
func (m *Map[K, V]) Max() optional.Value[KeyValuePair[K, V]] {
	if m.root == nil {
		return optional.None[KeyValuePair[K, V]]()
	}

	node := maximum(m.root)

	return optional.Some(KeyValuePair[K, V]{Key: node.key, Value: node.value})
}
