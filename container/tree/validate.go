package tree

import "github.com/pkg/errors"

// Validate checks that every key is on the right side of all its
// ancestors and that parent and child links agree. The root must not
// have a parent.
func (t *Tree) Validate() error {
	type bounds struct {
		n *Node

		// lo is inclusive and hi is exclusive
		lo, hi       int
		hasLo, hasHi bool
	}

	if t.root == nil {
		return nil
	}

	if t.root.parent != nil {
		return errors.Wrapf(ErrBrokenLink, "root %d has parent %d", t.root.key, t.root.parent.key)
	}

	seen := make(map[*Node]struct{})
	stack := []bounds{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.n

		if _, ok := seen[n]; ok {
			return errors.Wrapf(ErrBrokenLink, "node %d is reachable twice", n.key)
		}
		seen[n] = struct{}{}

		if (b.hasLo && n.key < b.lo) || (b.hasHi && n.key >= b.hi) {
			return errors.Wrapf(ErrOrderViolation, "node %d", n.key)
		}

		if n.left != nil {
			if n.left.parent != n {
				return errors.Wrapf(ErrBrokenLink, "left child %d of node %d", n.left.key, n.key)
			}
			stack = append(stack, bounds{n: n.left, lo: b.lo, hasLo: b.hasLo, hi: n.key, hasHi: true})
		}

		if n.right != nil {
			if n.right.parent != n {
				return errors.Wrapf(ErrBrokenLink, "right child %d of node %d", n.right.key, n.key)
			}
			stack = append(stack, bounds{n: n.right, lo: n.key, hasLo: true, hi: b.hi, hasHi: b.hasHi})
		}
	}

	return nil
}
