package treemap

import (
	"fmt"

	"github.com/amp-labs/amp-ordered/sortable"
	"github.com/amp-labs/amp-ordered/zero"
	"github.com/google/uuid"
)

// Map is a sorted key-value map backed by a self-balancing red-black tree.
// It maintains O(log n) performance for insertions, deletions, and lookups by
// enforcing red-black tree properties:
//  1. Every node is either red or black
//  2. The root is black
//  3. All leaves (nil nodes) are black
//  4. Red nodes cannot have red children
//  5. Every path from root to leaf contains the same number of black nodes
//
// The zero value is not usable; create instances with New.
type Map[K sortable.Sortable[K], V any] struct {
	root *node[K, V]
	size int

	// id identifies this instance in logs and iterator-mismatch errors.
	id     string
	name   string
	logger *logger
}

// New creates a new empty red-black tree map.
// The map maintains O(log n) performance for all operations by keeping the tree balanced.
func New[K sortable.Sortable[K], V any](opts ...Option) *Map[K, V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map[K, V]{
		id:     uuid.NewString(),
		name:   cfg.name,
		logger: newLogger(cfg.logger, cfg.name),
	}
}

// String returns a short description of the map for logs and debugging.
func (m *Map[K, V]) String() string {
	if m.name != "" {
		return fmt.Sprintf("treemap %q (%s, size=%d)", m.name, m.id, m.size)
	}

	return fmt.Sprintf("treemap (%s, size=%d)", m.id, m.size)
}

// Size returns the number of key-value pairs in the map. O(1).
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty returns true if the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// getParent finds the parent node where a key either exists or should be inserted.
// Returns (true, parent, direction) if key exists, (false, parent, direction) if not.
// The direction indicates whether the key is/should be a left or right child of parent.
func (m *Map[K, V]) getParent(key K) (found bool, parent *node[K, V], dir direction) {
	if m.root == nil {
		return false, nil, nodir
	}

	return m.internalLookup(nil, m.root, key, nodir)
}

// internalLookup recursively searches the tree for a key, tracking the parent node
// and direction at each step. This is used for both lookups and insertions.
func (m *Map[K, V]) internalLookup(
	parent *node[K, V], this *node[K, V], key K, dir direction,
) (bool, *node[K, V], direction) {
	switch {
	case this == nil:
		return false, parent, dir
	case key.Equals(this.key):
		return true, parent, dir
	case key.LessThan(this.key):
		return m.internalLookup(this, this.left, key, left)
	default:
		return m.internalLookup(this, this.right, key, right)
	}
}

// childOf resolves the node referenced by a (parent, direction) pair produced
// by internalLookup. A nil parent refers to the root.
func (m *Map[K, V]) childOf(parent *node[K, V], dir direction) *node[K, V] {
	if parent == nil {
		return m.root
	}

	switch dir {
	case left:
		return parent.left
	case right:
		return parent.right
	default:
		return nil
	}
}

// getNode retrieves the node containing the specified key.
// Returns the node and true if found, nil and false otherwise.
func (m *Map[K, V]) getNode(key K) (*node[K, V], bool) {
	found, parent, dir := m.getParent(key)
	if !found {
		return nil, false
	}

	node := m.childOf(parent, dir)
	if node == nil {
		return nil, false
	}

	return node, true
}

// Get retrieves the value associated with the given key.
// Returns (value, true) if found, (zero, false) if not found.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	node, ok := m.getNode(key)
	if !ok {
		return zero.Value[V](), false
	}

	return node.value, true
}

// GetOrElse retrieves the value for the given key, or returns defaultValue if not found.
func (m *Map[K, V]) GetOrElse(key K, defaultValue V) V {
	value, found := m.Get(key)
	if found {
		return value
	}

	return defaultValue
}

// At retrieves the value for the given key, failing with ErrKeyNotFound when
// the key is absent. At never inserts.
func (m *Map[K, V]) At(key K) (V, error) {
	node, ok := m.getNode(key)
	if !ok {
		return zero.Value[V](), fmt.Errorf("%w: %#v", ErrKeyNotFound, key)
	}

	return node.value, nil
}

// Contains checks whether the map contains the given key.
func (m *Map[K, V]) Contains(key K) bool {
	found, _, _ := m.getParent(key)

	return found
}

// Count returns the number of entries stored under the given key, which is
// either 0 or 1 since the map never stores duplicate keys.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}

	return 0
}

// Put inserts or updates a key-value pair in the map.
// If the key already exists, its value is replaced.
// After an insertion, the tree is rebalanced to maintain red-black properties.
func (m *Map[K, V]) Put(key K, value V) {
	node, inserted := m.insertNode(key, value)
	if !inserted {
		node.value = value
	}

	m.logger.opDone("put", m.id, m.size, "inserted", inserted)
}

// Insert adds a new entry without ever overwriting an existing one. It
// returns an iterator at the stored entry together with true when the entry
// was created, or an iterator at the pre-existing entry together with false
// when the key was already present (in which case the map is unchanged).
func (m *Map[K, V]) Insert(key K, value V) (*Iterator[K, V], bool) {
	node, inserted := m.insertNode(key, value)

	m.logger.opDone("insert", m.id, m.size, "inserted", inserted)

	return &Iterator[K, V]{cursor[K, V]{m: m, node: node}}, inserted
}

// GetOrInsert retrieves the value stored under key, inserting a zero-valued
// entry first when the key is absent. The second return value reports whether
// an insertion took place.
func (m *Map[K, V]) GetOrInsert(key K) (V, bool) {
	node, inserted := m.insertNode(key, zero.Value[V]())

	if inserted {
		m.logger.opDone("get_or_insert", m.id, m.size, "inserted", true)
	}

	return node.value, inserted
}

// insertNode descends to the key's position and attaches a new red node when
// the key is absent, then rebalances. Returns the node holding the key and
// whether a new node was created. Existing entries are never modified here.
func (m *Map[K, V]) insertNode(key K, value V) (*node[K, V], bool) {
	if m.root == nil {
		m.root = &node[K, V]{key: key, color: black, value: value}
		m.size = 1

		metricInserts(m.name)

		return m.root, true
	}

	found, parent, dir := m.internalLookup(nil, m.root, key, nodir)
	if found {
		return m.childOf(parent, dir), false
	}

	newNode := &node[K, V]{key: key, parent: parent, value: value}

	switch dir {
	case left:
		parent.left = newNode
	case right:
		parent.right = newNode
	case nodir:
	}

	m.fixupPut(newNode)
	m.size++

	metricInserts(m.name)

	return newNode, true
}

// Delete removes the entry stored under the given key and reports whether an
// entry was present. After deletion, the tree is rebalanced to maintain
// red-black properties.
func (m *Map[K, V]) Delete(key K) bool {
	node, ok := m.getNode(key)
	if !ok {
		return false
	}

	m.deleteNode(node)
	m.logger.opDone("delete", m.id, m.size)

	return true
}

// Clear removes all entries from the map, resetting it to empty. The detached
// subtree is released by the garbage collector.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0

	m.logger.opDone("clear", m.id, m.size)
}

// Clone returns a deep copy of the map: every node is duplicated, preserving
// key, value, color, and topology, so the clone shares no structure with the
// original. The clone keeps the original's name and logger but gets a fresh
// identity, so iterators are not interchangeable between the two.
func (m *Map[K, V]) Clone() *Map[K, V] {
	cloned := &Map[K, V]{
		id:     uuid.NewString(),
		name:   m.name,
		logger: m.logger,
		size:   m.size,
	}
	cloned.root = copyNodes(m.root, nil)

	return cloned
}

// copyNodes recursively duplicates the subtree rooted at src, attaching the
// copies under parent.
func copyNodes[K sortable.Sortable[K], V any](src, parent *node[K, V]) *node[K, V] {
	if src == nil {
		return nil
	}

	duplicate := &node[K, V]{
		key:    src.key,
		value:  src.value,
		color:  src.color,
		parent: parent,
	}
	duplicate.left = copyNodes(src.left, duplicate)
	duplicate.right = copyNodes(src.right, duplicate)

	return duplicate
}
