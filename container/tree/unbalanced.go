package tree

import "github.com/pkg/errors"

// Insert a key into the tree rooted at *root by preserving the Binary
// Search Tree properties but without applying any balancing algorithm.
// If *root is nil the new node becomes the root. Keys equal to an
// existing key are inserted to its right.
func Insert(root **Node, key int) {
	insertNode(root, &Node{key: key})
}

func insertNode(root **Node, n *Node) {
	var parent *Node
	var isLeft bool

	curr := *root

	for curr != nil {
		parent = curr
		if n.key < curr.key {
			isLeft = true
			curr = curr.left
		} else {
			isLeft = false
			curr = curr.right
		}
	}

	n.parent = parent

	switch {
	case parent == nil:
		*root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}
}

// Transplant replaces the subtree rooted at u with the subtree rooted
// at v as a child of u's parent. v may be nil. If u is the root, *root
// is updated to v.
func Transplant(root **Node, u *Node, v *Node) {
	mustNode(u)

	switch {
	case u.parent == nil:
		*root = v
	case u == u.parent.left:
		u.parent.left = v
	case u == u.parent.right:
		u.parent.right = v
	default:
		panic(errors.Wrapf(ErrBrokenLink, "node %d is not a child of its parent %d", u.key, u.parent.key))
	}

	if v != nil {
		v.parent = u.parent
	}
}

// Delete the node z from the tree rooted at *root by preserving the
// Binary Search Tree properties but without applying any balancing
// algorithm. z must belong to the tree. A nil z is ignored. Once
// removed, z has no parent and no children.
func Delete(root **Node, z *Node) {
	if z == nil {
		return
	}

	switch {
	case z.left == nil:
		Transplant(root, z, z.right)
	case z.right == nil:
		Transplant(root, z, z.left)
	default:
		min := z.right.Min()

		// min must leave its position before z is replaced. When it
		// is z's direct right child it keeps its right subtree
		if min.parent != z {
			Transplant(root, min, min.right)
			min.right = z.right
			min.right.parent = min
		}

		Transplant(root, z, min)
		min.left = z.left
		min.left.parent = min
	}

	z.detach()
}
