package tree

// Node of a binary search tree. A node owns its left and right
// children. The parent is a back reference that is nil for the root
// and for nodes that have been removed from their tree.
type Node struct {
	key    int
	left   *Node
	right  *Node
	parent *Node
}

// NewNode creates a node with no parent and no children
func NewNode(key int) *Node {
	return &Node{key: key}
}

// Key returns the node's key
func (n *Node) Key() int {
	return n.key
}

// Left returns the node's left child
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the node's right child
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the node's parent
func (n *Node) Parent() *Node {
	return n.parent
}

// AddLeft creates a new node with the key and attaches it as the left
// child of n. A previous left subtree is detached from n. AddLeft does
// not check the ordering of keys.
func (n *Node) AddLeft(key int) *Node {
	mustNode(n)
	if n.left != nil {
		n.left.parent = nil
	}

	n.left = &Node{key: key, parent: n}
	return n.left
}

// AddRight creates a new node with the key and attaches it as the right
// child of n. A previous right subtree is detached from n. AddRight does
// not check the ordering of keys.
func (n *Node) AddRight(key int) *Node {
	mustNode(n)
	if n.right != nil {
		n.right.parent = nil
	}

	n.right = &Node{key: key, parent: n}
	return n.right
}

// Min returns the node in the subtree with the lowest key
func (n *Node) Min() *Node {
	mustNode(n)

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree with the highest key
func (n *Node) Max() *Node {
	mustNode(n)

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Root follows the parent references until it reaches
// a node without parent
func (n *Node) Root() *Node {
	mustNode(n)

	curr := n
	for curr.parent != nil {
		curr = curr.parent
	}

	return curr
}

// Contains returns true if the subtree contains at
// least one node with key k
func (n *Node) Contains(k int) bool {
	return n.Find(k) != nil
}

// Find returns the first node on the search path from n that
// holds the key k. It returns nil if there is none, which includes
// searching from a nil node.
func (n *Node) Find(k int) *Node {
	for curr := n; curr != nil; {
		switch {
		case k == curr.key:
			return curr
		case k < curr.key:
			curr = curr.left
		default:
			curr = curr.right
		}
	}

	return nil
}

// Count returns the number of occurrences of k
// in the subtree
func (n *Node) Count(k int) (count int) {
	for curr := n; curr != nil; {
		if k < curr.key {
			curr = curr.left
		} else {
			// duplicates are always inserted to the right, so the
			// remaining occurrences live in the right subtree
			if k == curr.key {
				count++
			}

			curr = curr.right
		}
	}

	return count
}

// Successor finds the successor of the node in its tree by in order
// position. It returns nil for the node that holds the maximum.
func (n *Node) Successor() *Node {
	mustNode(n)

	if n.right != nil {
		return n.right.Min()
	}

	curr := n
	parent := n.parent
	for parent != nil && curr == parent.right {
		curr = parent
		parent = parent.parent
	}

	return parent
}

// Predecessor finds the predecessor of the node in its tree by in order
// position. It returns nil for the node that holds the minimum.
func (n *Node) Predecessor() *Node {
	mustNode(n)

	if n.left != nil {
		return n.left.Max()
	}

	curr := n
	parent := n.parent
	for parent != nil && curr == parent.left {
		curr = parent
		parent = parent.parent
	}

	return parent
}

// Higher returns the node in the subtree with the smallest key
// that is greater than or equal to k
func (n *Node) Higher(k int) *Node {
	var higher *Node

	for curr := n; curr != nil; {
		if k <= curr.key {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// Lower returns the node in the subtree with the highest key
// that is lower than or equal to k
func (n *Node) Lower(k int) *Node {
	var lower *Node

	for curr := n; curr != nil; {
		if k < curr.key {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	return lower
}

// detach clears all the links of a node that is no
// longer part of a tree
func (n *Node) detach() {
	n.left = nil
	n.right = nil
	n.parent = nil
}

func mustNode(n *Node) {
	if n == nil {
		panic(ErrNilNode)
	}
}
