// Package treemap provides a sorted key-value map backed by a red-black tree.
// The map keeps its entries ordered by key and guarantees O(log n) worst-case
// cost for lookups, insertions, and deletions, with O(1) size queries and
// bidirectional iteration over the sorted sequence.
//
// Red-black trees enforce the following properties to maintain balance:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children (no two consecutive red nodes on any path)
//  5. Every path from root to leaf contains the same number of black nodes
//
// These properties ensure the tree remains approximately balanced, preventing
// the worst-case O(n) behavior of unbalanced binary search trees.
//
// Keys must implement sortable.Sortable and are immutable once stored; only
// the associated values can be replaced. Duplicate keys are structurally
// impossible: inserting an existing key either overwrites the value (Put) or
// reports the existing entry (Insert).
//
// Iteration uses explicit cursors ([Iterator], [ConstIterator]) in addition to
// the range-over-func [Map.Seq] sequence. Cursors are bound to the map that
// created them; dereferencing an end cursor, stepping past either end, or
// submitting a foreign or stale cursor to [Map.Erase] yields ErrInvalidIterator
// rather than undefined behavior.
//
// Thread-safety: a Map is a single-owner, in-process structure with no internal
// locking. Concurrent access must be synchronized by the caller.
package treemap
