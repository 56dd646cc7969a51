package treemap

import (
	"fmt"

	"github.com/amp-labs/amp-ordered/errors"
	"github.com/amp-labs/amp-ordered/sortable"
)

// Validate audits the structural invariants of the tree and returns all
// violations joined into a single error, or nil when the tree is sound.
// It checks the red-black coloring rules (black root, no red-red edges,
// uniform black-height), the strict ascending key order, parent link
// consistency, and that the size counter matches the number of live entries.
//
// Validate is O(n) and intended for tests and debugging, not hot paths.
func (m *Map[K, V]) Validate() error {
	var errs errors.Collection

	if m.root != nil {
		if m.root.color != black {
			errs.Add(fmt.Errorf("%w: root %s is red", ErrInvariantViolated, m.root))
		}

		if m.root.parent != nil {
			errs.Add(fmt.Errorf("%w: root %s has a parent", ErrInvariantViolated, m.root))
		}

		auditSubtree(m.root, &errs)
	}

	m.auditOrderAndSize(&errs)

	return errs.GetError()
}

// auditSubtree checks coloring and link invariants below n and returns the
// subtree's black-height (counting nil leaves as one black node).
func auditSubtree[K sortable.Sortable[K], V any](n *node[K, V], errs *errors.Collection) int {
	if n == nil {
		return 1
	}

	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		errs.Add(fmt.Errorf("%w: red node %s has a red child", ErrInvariantViolated, n))
	}

	if n.left != nil && n.left.parent != n {
		errs.Add(fmt.Errorf("%w: left child of %s has a wrong parent link", ErrInvariantViolated, n))
	}

	if n.right != nil && n.right.parent != n {
		errs.Add(fmt.Errorf("%w: right child of %s has a wrong parent link", ErrInvariantViolated, n))
	}

	leftHeight := auditSubtree(n.left, errs)
	rightHeight := auditSubtree(n.right, errs)

	if leftHeight != rightHeight {
		errs.Add(fmt.Errorf(
			"%w: black-height mismatch at %s (left %d, right %d)",
			ErrInvariantViolated, n, leftHeight, rightHeight,
		))
	}

	if n.color == black {
		return leftHeight + 1
	}

	return leftHeight
}

// auditOrderAndSize walks the in-order sequence once, checking strict
// ascending key order and the size counter.
func (m *Map[K, V]) auditOrderAndSize(errs *errors.Collection) {
	count := 0
	orderedOK := true

	var (
		prevKey K
		hasPrev bool
	)

	for key := range m.Seq() {
		if hasPrev && orderedOK && !prevKey.LessThan(key) {
			errs.Add(fmt.Errorf(
				"%w: keys out of order (%#v does not precede %#v)",
				ErrInvariantViolated, prevKey, key,
			))

			orderedOK = false
		}

		prevKey = key
		hasPrev = true
		count++
	}

	if count != m.size {
		errs.Add(fmt.Errorf(
			"%w: size counter %d does not match %d live entries",
			ErrInvariantViolated, m.size, count,
		))
	}
}
