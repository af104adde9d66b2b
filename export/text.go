package export

import (
	"fmt"
	"strconv"

	"github.com/eaugeas/bstree/container/tree"
	"github.com/xlab/treeprint"
)

const emptyTree = "<empty>"

// Text renders the tree as an indented text tree with one line
// per node. Children are prefixed with L or R.
func Text(t *tree.Tree) string {
	entries := t.Entries()
	if len(entries) == 0 {
		return treeprint.NewWithRoot(emptyTree).String()
	}

	type item struct {
		branch treeprint.Tree
		id     int
	}

	root := treeprint.NewWithRoot(strconv.Itoa(entries[0].Key))
	stack := []item{{branch: root, id: 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := entries[it.id]

		for _, child := range []struct {
			side string
			id   int
		}{{"L", e.Left}, {"R", e.Right}} {
			if child.id == tree.NoNode {
				continue
			}

			c := entries[child.id]
			label := fmt.Sprintf("%s %d", child.side, c.Key)
			if c.Left == tree.NoNode && c.Right == tree.NoNode {
				it.branch.AddNode(label)
			} else {
				stack = append(stack, item{branch: it.branch.AddBranch(label), id: child.id})
			}
		}
	}

	return root.String()
}
