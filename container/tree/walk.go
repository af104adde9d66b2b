package tree

// InOrderWalk visits the nodes of the subtree in ascending key order.
// fn must not modify the tree.
func (n *Node) InOrderWalk(fn func(*Node)) {
	if n == nil {
		return
	}

	last := n.Max()
	for curr := n.Min(); ; curr = curr.Successor() {
		fn(curr)
		if curr == last {
			break
		}
	}
}

// PreOrderWalk visits every node of the subtree before its children.
// fn must not modify the tree.
func (n *Node) PreOrderWalk(fn func(*Node)) {
	if n == nil {
		return
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(curr)

		// right is pushed first so that left is visited first
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

// PostOrderWalk visits every node of the subtree after its children.
// fn must not modify the tree.
func (n *Node) PostOrderWalk(fn func(*Node)) {
	var stack []*Node
	var visited *Node

	for curr := n; curr != nil || len(stack) > 0; {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != visited {
			curr = top.right
			continue
		}

		fn(top)
		visited = top
		stack = stack[:len(stack)-1]
	}
}

// InOrderWalk visits the nodes of the tree in ascending key order
func (t *Tree) InOrderWalk(fn func(*Node)) {
	t.root.InOrderWalk(fn)
}

// PreOrderWalk visits every node of the tree before its children
func (t *Tree) PreOrderWalk(fn func(*Node)) {
	t.root.PreOrderWalk(fn)
}

// PostOrderWalk visits every node of the tree after its children
func (t *Tree) PostOrderWalk(fn func(*Node)) {
	t.root.PostOrderWalk(fn)
}

// Keys returns the keys of the tree in ascending order
func (t *Tree) Keys() []int {
	var keys []int
	t.InOrderWalk(func(n *Node) {
		keys = append(keys, n.key)
	})

	return keys
}
