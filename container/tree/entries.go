package tree

// NoNode is the identifier used in an Entry for a missing relative
const NoNode = -1

// Entry is a read only description of a node that renderers can use
// to rebuild the shape of a tree without holding node references
type Entry struct {
	ID     int
	Key    int
	Parent int
	Left   int
	Right  int
}

// Entries describes every node of the tree. Identifiers are assigned
// in pre order starting at 0, so the root, if any, is always entry 0.
// Relations are taken from the child links.
func (t *Tree) Entries() []Entry {
	type item struct {
		n      *Node
		parent int
		isLeft bool
	}

	var entries []Entry
	if t.root == nil {
		return entries
	}

	stack := []item{{n: t.root, parent: NoNode}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := len(entries)
		if it.parent != NoNode {
			if it.isLeft {
				entries[it.parent].Left = id
			} else {
				entries[it.parent].Right = id
			}
		}

		entries = append(entries, Entry{
			ID:     id,
			Key:    it.n.key,
			Parent: it.parent,
			Left:   NoNode,
			Right:  NoNode,
		})

		if it.n.right != nil {
			stack = append(stack, item{n: it.n.right, parent: id})
		}
		if it.n.left != nil {
			stack = append(stack, item{n: it.n.left, parent: id, isLeft: true})
		}
	}

	return entries
}
