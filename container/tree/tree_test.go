package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeMaxValue = 10

// clrsKeys builds the tree of figure 12.2 of Introduction to Algorithms
var clrsKeys = []int{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9}

type balancedTreeGenerator struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next returns the next key of a sequence that, inserted in order,
// builds a balanced tree
func (g *balancedTreeGenerator) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}

func levels(tree *Tree) [][]*Node {
	result := [][]*Node{[]*Node{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node, nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] == nil {
				result[currLevel+1][2*i] = nil
				result[currLevel+1][2*i+1] = nil
			} else {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree(t *testing.T, expected [][]interface{}, tree *Tree) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col])
			} else {
				assert.NotNil(t, levels[level][col])
				assert.Equal(t, expected[level][col], levels[level][col].Key())
			}
		}
	}

	assert.NoError(t, tree.Validate())
}

func prePopulateTree(tree *Tree) {
	if !tree.Empty() {
		panic("attempt to prepopulate non-empty tree")
	}
	it := balancedTreeGenerator{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		tree.Insert(value)
	}
}

func prePopulatedTree() *Tree {
	tree := New()
	prePopulateTree(tree)
	return tree
}

func clrsTree() *Tree {
	tree := New()
	for _, k := range clrsKeys {
		tree.Insert(k)
	}
	return tree
}

// handBuiltCLRSTree links the same tree as clrsTree through explicit
// child attachment
func handBuiltCLRSTree() *Tree {
	root := NewNode(15)
	six := root.AddLeft(6)
	eighteen := root.AddRight(18)
	eighteen.AddLeft(17)
	eighteen.AddRight(20)
	three := six.AddLeft(3)
	three.AddLeft(2)
	three.AddRight(4)
	seven := six.AddRight(7)
	seven.AddRight(13).AddLeft(9)
	return FromRoot(root)
}

func TestTreeEmpty(t *testing.T) {
	tree := New()

	assert.True(t, tree.Empty())
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Search(1))
	assert.False(t, tree.Contains(1))
	assert.Equal(t, 0, tree.Count(1))
	assert.Nil(t, tree.Keys())
	assert.Empty(t, tree.Entries())
	assert.NoError(t, tree.Validate())

	_, err := tree.Min()
	assert.ErrorIs(t, err, ErrEmptyTree)
	_, err = tree.Max()
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestTreeCLRSScenario(t *testing.T) {
	tree := clrsTree()
	require.NoError(t, tree.Validate())
	assert.Equal(t, len(clrsKeys), tree.Len())
	assert.Equal(t, 5, tree.Height())

	min, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, 2, min.Key())

	max, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, 20, max.Key())

	assert.Nil(t, tree.Search(22))

	succ := tree.Search(2).Successor()
	require.NotNil(t, succ)
	assert.Equal(t, 3, succ.Key())
	assert.Nil(t, tree.Search(20).Successor())

	tree.Delete(tree.Root())

	assert.Nil(t, tree.Search(15))
	require.NotNil(t, tree.Search(9))
	assert.Equal(t, 9, tree.Search(9).Key())
	assert.Equal(t, len(clrsKeys)-1, tree.Len())
	assert.Equal(t, 17, tree.Root().Key())
	assert.NoError(t, tree.Validate())
}

func TestTreeHandBuiltMatchesInserted(t *testing.T) {
	built := handBuiltCLRSTree()
	inserted := clrsTree()

	require.NoError(t, built.Validate())
	assert.Equal(t, inserted.Entries(), built.Entries())
}

func TestTreeFromRootUsesRootOfNode(t *testing.T) {
	root := NewNode(10)
	leaf := root.AddLeft(5).AddRight(7)

	tree := FromRoot(leaf)

	assert.Equal(t, root, tree.Root())
	assert.Equal(t, 3, tree.Len())
	assert.True(t, FromRoot(nil).Empty())
}

func TestTreeInsertOnHandBuiltTree(t *testing.T) {
	tree := handBuiltCLRSTree()

	tree.Insert(5)
	tree.Insert(19)

	n := tree.Search(5)
	require.NotNil(t, n)
	assert.Equal(t, 4, n.Parent().Key())
	assert.Equal(t, n, n.Parent().Right())
	assert.Equal(t, 20, tree.Search(19).Parent().Key())
	assert.NoError(t, tree.Validate())
}

func TestTreeRootIdempotent(t *testing.T) {
	tree := clrsTree()

	tree.InOrderWalk(func(n *Node) {
		root := n.Root()
		assert.Equal(t, tree.Root(), root)
		assert.Equal(t, root, root.Root())
		assert.Nil(t, root.Parent())
	})
}

func TestTreeHeightDegenerate(t *testing.T) {
	tree := New()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}

	assert.Equal(t, 100, tree.Height())
	assert.Equal(t, 100, tree.Len())
	assert.NoError(t, tree.Validate())
}

func TestTreeDegenerateDeepChain(t *testing.T) {
	const depth = 10000
	tree := New()
	for i := depth; i > 0; i-- {
		tree.Insert(i)
	}

	min, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, min.Key())
	assert.Equal(t, tree.Root(), min.Root())
	assert.Equal(t, 2, min.Successor().Key())
	assert.Equal(t, 1, tree.Search(1).Key())
}
