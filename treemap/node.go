package treemap

import (
	"fmt"

	"github.com/amp-labs/amp-ordered/sortable"
)

// color represents the color of a red-black tree node.
// Red-black trees use node colors to maintain balance during insertions and deletions.
type color bool

// direction indicates the relationship of a node to its parent (left child, right child, or root).
type direction byte

// String returns a human-readable representation of the node color.
func (c color) String() string {
	switch c {
	case true:
		return "Black"
	default:
		return "Red"
	}
}

// String returns a human-readable representation of the direction.
func (d direction) String() string {
	switch d {
	case left:
		return "left"
	case right:
		return "right"
	case nodir:
		return "center"
	default:
		return "not recognized"
	}
}

const (
	// black and red are the two node colors in a red-black tree.
	// Red is the zero value so that freshly attached nodes start out red.
	black, red color = true, false

	// left, right, and nodir represent the position of a node relative to its parent.
	// nodir is used for the root node which has no parent.
	left direction = iota
	right
	nodir
)

// node represents a single node in the red-black tree.
// Each node stores a key-value pair, maintains pointers to its children and parent,
// and tracks its color for tree balancing. Ownership runs strictly through the
// child links; the parent pointer is a non-owning back-reference used for
// traversal and rebalancing only.
type node[K sortable.Sortable[K], V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// String returns a string representation of the node showing its key and color.
func (n *node[K, V]) String() string {
	return fmt.Sprintf("(%#v : %s)", n.key, n.color)
}

// isRed returns true if the node is red, false if the node is black or nil.
// nil nodes are considered black by red-black tree convention.
func isRed[K sortable.Sortable[K], V any](n *node[K, V]) bool {
	if n == nil {
		return false
	}

	return n.color == red
}

// minimum returns the node with the smallest key in the subtree rooted at x.
// This is always the leftmost node in the subtree. x must not be nil.
func minimum[K sortable.Sortable[K], V any](x *node[K, V]) *node[K, V] {
	for x.left != nil {
		x = x.left
	}

	return x
}

// maximum returns the node with the largest key in the subtree rooted at x.
// This is always the rightmost node in the subtree. x must not be nil.
func maximum[K sortable.Sortable[K], V any](x *node[K, V]) *node[K, V] {
	for x.right != nil {
		x = x.right
	}

	return x
}

// successor returns the in-order successor of x, or nil if x holds the
// largest key. The successor is the leftmost node of the right subtree when
// one exists, otherwise the nearest ancestor whose left subtree contains x.
func successor[K sortable.Sortable[K], V any](x *node[K, V]) *node[K, V] {
	if x.right != nil {
		return minimum(x.right)
	}

	parent := x.parent
	for parent != nil && x == parent.right {
		x = parent
		parent = parent.parent
	}

	return parent
}

// predecessor returns the in-order predecessor of x, or nil if x holds the
// smallest key. It is the mirror image of successor.
func predecessor[K sortable.Sortable[K], V any](x *node[K, V]) *node[K, V] {
	if x.left != nil {
		return maximum(x.left)
	}

	parent := x.parent
	for parent != nil && x == parent.left {
		x = parent
		parent = parent.parent
	}

	return parent
}
