package tree

// Tree represents a binary search tree of integer keys. The tree is
// not balanced, its shape depends exclusively on the order of the
// insert and delete operations performed on it. A Tree is not safe
// for concurrent use.
type Tree struct {
	root *Node
}

// New creates an empty tree
func New() *Tree {
	return &Tree{}
}

// FromRoot creates a tree out of nodes linked by hand with
// AddLeft and AddRight. The tree is rooted at the root of n.
// It returns an empty tree if n is nil.
func FromRoot(n *Node) *Tree {
	if n == nil {
		return New()
	}

	return &Tree{root: n.Root()}
}

// Len returns the number of nodes in the tree. It walks the
// whole tree.
func (t *Tree) Len() (count int) {
	t.PreOrderWalk(func(*Node) {
		count++
	})

	return count
}

// Height returns the number of nodes on the longest path from
// the root to a leaf
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*Node{t.root}
	for len(level) > 0 {
		height++
		var next []*Node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return height
}

// Empty returns true if the tree has no nodes
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree) Root() *Node {
	return t.root
}

// Min returns the node in the tree with the
// lowest key
func (t *Tree) Min() (*Node, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	return t.root.Min(), nil
}

// Max returns the node in the tree with the
// highest key
func (t *Tree) Max() (*Node, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	return t.root.Max(), nil
}

// Higher returns the node in the tree with the smallest key
// that is greater than or equal to k
func (t *Tree) Higher(k int) *Node {
	return t.root.Higher(k)
}

// Lower returns the node in the tree with the highest key
// that is lower than or equal to k
func (t *Tree) Lower(k int) *Node {
	return t.root.Lower(k)
}

// Contains returns true if the tree contains at
// least one node with key k
func (t *Tree) Contains(k int) bool {
	return t.root.Find(k) != nil
}

// Count returns the number of occurrences of k
// in the tree
func (t *Tree) Count(k int) int {
	return t.root.Count(k)
}

// Search returns the first node in the tree that
// holds the key k, or nil if there is none
func (t *Tree) Search(k int) *Node {
	return t.root.Find(k)
}

// Insert a key into the tree
func (t *Tree) Insert(k int) {
	Insert(&t.root, k)
}

// Transplant replaces the subtree rooted at u with the
// subtree rooted at v
func (t *Tree) Transplant(u *Node, v *Node) {
	Transplant(&t.root, u, v)
}

// Delete removes the node z from the tree. z must be a node
// of this tree
func (t *Tree) Delete(z *Node) {
	Delete(&t.root, z)
}

// Remove deletes the first node on the tree that has key
// equal to k. It returns false if there is no such node
func (t *Tree) Remove(k int) bool {
	n := t.Search(k)
	if n == nil {
		return false
	}

	t.Delete(n)
	return true
}
