package treemap

import (
	"fmt"

	"github.com/amp-labs/amp-ordered/sortable"
	"github.com/amp-labs/amp-ordered/zero"
)

// Position is the comparison contract shared by Iterator and ConstIterator.
// Two positions are interchangeable in Equal regardless of their access mode,
// so a mutable and a read-only iterator denoting the same entry of the same
// map compare equal.
type Position[K sortable.Sortable[K], V any] interface {
	position() (*Map[K, V], *node[K, V])
}

// cursor is the shared core of both iterator variants: a map identity plus a
// node identity, where a nil node denotes the past-the-end position. Cursors
// read tree topology but never mutate it; all structural changes go through
// the map.
type cursor[K sortable.Sortable[K], V any] struct {
	m    *Map[K, V]
	node *node[K, V]
}

func (c *cursor[K, V]) position() (*Map[K, V], *node[K, V]) {
	return c.m, c.node
}

// AtEnd returns true if the cursor denotes the past-the-end position.
func (c *cursor[K, V]) AtEnd() bool {
	return c.node == nil
}

// Next advances the cursor to the next entry in ascending key order.
// Advancing from the last entry moves to the end position; advancing from the
// end position fails with ErrInvalidIterator and leaves the cursor unchanged.
func (c *cursor[K, V]) Next() error {
	if c.node == nil {
		return fmt.Errorf("%w: cannot advance past the end", ErrInvalidIterator)
	}

	c.node = successor(c.node)

	return nil
}

// Prev steps the cursor to the previous entry in ascending key order.
// Stepping back from the end position moves to the last entry. Stepping back
// from the first entry, or from the end of an empty map, fails with
// ErrInvalidIterator and leaves the cursor unchanged.
func (c *cursor[K, V]) Prev() error {
	if c.node == nil {
		if c.m == nil || c.m.root == nil {
			return fmt.Errorf("%w: cannot step back on an empty map", ErrInvalidIterator)
		}

		c.node = maximum(c.m.root)

		return nil
	}

	prev := predecessor(c.node)
	if prev == nil {
		return fmt.Errorf("%w: cannot step back before the first entry", ErrInvalidIterator)
	}

	c.node = prev

	return nil
}

// Key returns the key of the entry the cursor denotes.
// Fails with ErrInvalidIterator at the end position.
func (c *cursor[K, V]) Key() (K, error) {
	if c.node == nil {
		return zero.Value[K](), fmt.Errorf("%w: dereference of end iterator", ErrInvalidIterator)
	}

	return c.node.key, nil
}

// Value returns the value of the entry the cursor denotes.
// Fails with ErrInvalidIterator at the end position.
func (c *cursor[K, V]) Value() (V, error) {
	if c.node == nil {
		return zero.Value[V](), fmt.Errorf("%w: dereference of end iterator", ErrInvalidIterator)
	}

	return c.node.value, nil
}

// Entry returns a snapshot of the entry the cursor denotes.
// Fails with ErrInvalidIterator at the end position.
func (c *cursor[K, V]) Entry() (KeyValuePair[K, V], error) {
	if c.node == nil {
		return KeyValuePair[K, V]{}, fmt.Errorf("%w: dereference of end iterator", ErrInvalidIterator)
	}

	return KeyValuePair[K, V]{Key: c.node.key, Value: c.node.value}, nil
}

// Equal reports whether two positions denote the same entry of the same map.
// End positions of the same map compare equal; positions of different maps
// never do.
func (c *cursor[K, V]) Equal(other Position[K, V]) bool {
	if other == nil {
		return false
	}

	otherMap, otherNode := other.position()

	return c.m == otherMap && c.node == otherNode
}

// Iterator is a mutable bidirectional cursor over the map's entries in
// ascending key order. It can replace the value of the entry it denotes but
// never the key, since the tree's ordering depends on keys staying put.
type Iterator[K sortable.Sortable[K], V any] struct {
	cursor[K, V]
}

// SetValue replaces the value of the entry the iterator denotes.
// Fails with ErrInvalidIterator at the end position.
func (it *Iterator[K, V]) SetValue(value V) error {
	if it.node == nil {
		return fmt.Errorf("%w: dereference of end iterator", ErrInvalidIterator)
	}

	it.node.value = value

	return nil
}

// ReadOnly returns a read-only view of the same position.
func (it *Iterator[K, V]) ReadOnly() *ConstIterator[K, V] {
	return &ConstIterator[K, V]{cursor[K, V]{m: it.m, node: it.node}}
}

// ConstIterator is a read-only bidirectional cursor over the map's entries in
// ascending key order. It is comparable with Iterator through Equal.
type ConstIterator[K sortable.Sortable[K], V any] struct {
	cursor[K, V]
}

// Begin returns an iterator at the smallest key, or at the end position when
// the map is empty.
func (m *Map[K, V]) Begin() *Iterator[K, V] {
	return &Iterator[K, V]{cursor[K, V]{m: m, node: m.first()}}
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{cursor[K, V]{m: m}}
}

// Find returns an iterator at the entry stored under key, or the end iterator
// when the key is absent.
func (m *Map[K, V]) Find(key K) *Iterator[K, V] {
	node, _ := m.getNode(key)

	return &Iterator[K, V]{cursor[K, V]{m: m, node: node}}
}

// ConstBegin returns a read-only iterator at the smallest key, or at the end
// position when the map is empty.
func (m *Map[K, V]) ConstBegin() *ConstIterator[K, V] {
	return &ConstIterator[K, V]{cursor[K, V]{m: m, node: m.first()}}
}

// ConstEnd returns the read-only past-the-end iterator.
func (m *Map[K, V]) ConstEnd() *ConstIterator[K, V] {
	return &ConstIterator[K, V]{cursor[K, V]{m: m}}
}

// ConstFind returns a read-only iterator at the entry stored under key, or the
// read-only end iterator when the key is absent.
func (m *Map[K, V]) ConstFind(key K) *ConstIterator[K, V] {
	node, _ := m.getNode(key)

	return &ConstIterator[K, V]{cursor[K, V]{m: m, node: node}}
}

func (m *Map[K, V]) first() *node[K, V] {
	if m.root == nil {
		return nil
	}

	return minimum(m.root)
}

// Erase removes the entry the iterator denotes and rebalances the tree.
// It fails with ErrInvalidIterator when the iterator is the end iterator,
// belongs to a different map instance, or denotes a node that is no longer
// part of this map; the map is left untouched on every failing path. The
// submitted iterator must not be used afterwards.
func (m *Map[K, V]) Erase(it *Iterator[K, V]) error {
	switch {
	case it == nil:
		return fmt.Errorf("%w: nil iterator", ErrInvalidIterator)
	case it.m != m:
		return fmt.Errorf("%w: iterator does not belong to map %s", ErrInvalidIterator, m.id)
	case it.node == nil:
		return fmt.Errorf("%w: cannot erase the end iterator", ErrInvalidIterator)
	case !m.owns(it.node):
		return fmt.Errorf("%w: iterator no longer denotes a live entry", ErrInvalidIterator)
	}

	m.deleteNode(it.node)
	m.logger.opDone("erase", m.id, m.size)

	return nil
}

// owns reports whether n is currently reachable inside this map. Stale nodes
// have their links severed on removal, so climbing to the root distinguishes
// live entries from erased ones in O(log n).
func (m *Map[K, V]) owns(n *node[K, V]) bool {
	for n.parent != nil {
		n = n.parent
	}

	return n == m.root && m.root != nil
}
