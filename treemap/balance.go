package treemap

// rotateRight performs a right rotation around node y.
// This is a fundamental operation for rebalancing the tree:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// nolint:dupword,varnamelen // ASCII art; standard RB tree variable names
func (m *Map[K, V]) rotateRight(y *node[K, V]) {
	if y == nil || y.left == nil {
		return
	}

	x := y.left //nolint:varnamelen // Standard red-black tree variable names from CLRS
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		m.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x

	metricRotations(m.name)
}

// rotateLeft performs a left rotation around node x.
// This is a fundamental operation for rebalancing the tree:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// nolint:varnamelen // Standard red-black tree variable names
func (m *Map[K, V]) rotateLeft(x *node[K, V]) {
	if x == nil || x.right == nil {
		return
	}

	y := x.right //nolint:varnamelen // Standard red-black tree variable names from CLRS
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		m.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y

	metricRotations(m.name)
}

// transplant replaces the subtree rooted at node u with the subtree rooted at node v.
// This is a helper used during node deletion.
func (m *Map[K, V]) transplant(u *node[K, V], v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupPut restores red-black tree properties after inserting a new node.
// New nodes are inserted as red, which may violate the property that red nodes
// cannot have red children. This method fixes violations by recoloring and rotating.
//
// The algorithm handles several cases:
//  1. New node is root - color it black
//  2. Parent is black - no violation, done
//  3. Parent is red:
//     a. Uncle is red - recolor parent, uncle, and grandparent
//     b. Uncle is black - perform rotations and recoloring
//
// The method continues fixing violations up the tree until no violations remain.
// nolint:varnamelen // Standard red-black tree variable names
func (m *Map[K, V]) fixupPut(z *node[K, V]) {
loop:
	for {
		switch {
		case z.parent == nil:
			fallthrough
		case z.parent.color == black:
			break loop
		case z.parent.color == red:
			grandparent := z.parent.parent
			if z.parent == grandparent.left { //nolint:nestif // Red-black tree algorithm complexity
				y := grandparent.right
				if isRed(y) {
					z.parent.color = black
					y.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.right {
						z = z.parent
						m.rotateLeft(z)
					}

					z.parent.color = black
					grandparent.color = red
					m.rotateRight(grandparent)
				}
			} else {
				y := grandparent.left
				if isRed(y) {
					z.parent.color = black
					y.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.left {
						z = z.parent
						m.rotateRight(z)
					}

					z.parent.color = black
					grandparent.color = red
					m.rotateLeft(grandparent)
				}
			}
		}
	}

	m.root.color = black
}

// deleteNode unlinks z from the tree and rebalances. A node with two children
// is never copied over: its in-order successor is spliced into z's place,
// keeping the successor's node identity alive so that iterators at entries
// other than the erased one stay valid.
// nolint:varnamelen // Standard red-black tree variable names
func (m *Map[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yOriginalColor := y.color

	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		m.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		m.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y

			if x != nil {
				x.parent = y
			}
		} else {
			xParent = y.parent
			m.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		m.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		m.fixupDelete(x, xParent)
	}

	// Sever the removed node's links so stale iterators are detectable.
	z.parent = nil
	z.left = nil
	z.right = nil

	m.size--

	metricErases(m.name)
}

// fixupDelete restores red-black tree properties after deleting a node.
// Deletion can violate the property that all paths from root to leaf have the
// same number of black nodes. This method fixes violations by recoloring and rotating.
//
// x is the node that replaced the removed one and carries the black deficit;
// it may be nil, which is why its parent is threaded through explicitly
// instead of being read from x.
//
// The algorithm handles several cases based on the "sibling" (w) of the node being fixed:
//  1. Node is root or red - can be colored black, done
//  2. Sibling is red - rotate and recolor to create a black sibling
//  3. Sibling is black with two black children - recolor sibling, move problem up
//  4. Sibling is black with red child - rotate and recolor to fix the violation
//
// The method is more complex than fixupPut because deletion affects black-height,
// requiring careful handling of all cases to maintain tree balance.
// nolint:varnamelen,dupl // Standard red-black tree variable names; symmetric cases
func (m *Map[K, V]) fixupDelete(x, parent *node[K, V]) {
loop:
	for {
		switch {
		case x == m.root || parent == nil:
			break loop
		case isRed(x):
			break loop
		case x == parent.right:
			// The deficit side lost a black node, so the sibling subtree
			// holds at least one and w cannot be nil.
			w := parent.left //nolint:varnamelen // Standard red-black tree variable names from CLRS
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateRight(parent)
				w = parent.left
			}

			switch {
			case !isRed(w.left) && !isRed(w.right):
				w.color = red
				x = parent
				parent = x.parent // recurse up tree
			default:
				if !isRed(w.left) {
					w.right.color = black
					w.color = red
					m.rotateLeft(w)
					w = parent.left
				}

				w.color = parent.color
				parent.color = black

				if w.left != nil {
					w.left.color = black
				}

				m.rotateRight(parent)

				x = m.root
				parent = nil
			}
		default:
			w := parent.right //nolint:varnamelen // Standard red-black tree variable names from CLRS
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateLeft(parent)
				w = parent.right
			}

			switch {
			case !isRed(w.left) && !isRed(w.right):
				w.color = red
				x = parent
				parent = x.parent // recurse up tree
			default:
				if !isRed(w.right) {
					w.left.color = black
					w.color = red
					m.rotateRight(w)
					w = parent.right
				}

				w.color = parent.color
				parent.color = black

				if w.right != nil {
					w.right.color = black
				}

				m.rotateLeft(parent)

				x = m.root
				parent = nil
			}
		}
	}

	if x != nil {
		x.color = black
	}
}
