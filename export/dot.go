package export

import (
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/eaugeas/bstree/container/tree"
	"github.com/pkg/errors"
)

const graphName = "bst"

func nodeName(id int) string {
	return "n" + strconv.Itoa(id)
}

// DOT writes a Graphviz digraph of the tree to w. Every node is
// labelled with its key and edges to children are labelled L or R.
func DOT(w io.Writer, t *tree.Tree) error {
	g, err := graph(t)
	if err != nil {
		return errors.Wrap(err, "failed to build graph")
	}

	_, err = io.WriteString(w, g.String())
	return err
}

func graph(t *tree.Tree) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	entries := t.Entries()
	for _, e := range entries {
		if err := g.AddNode(graphName, nodeName(e.ID), map[string]string{
			"label": strconv.Quote(strconv.Itoa(e.Key)),
		}); err != nil {
			return nil, err
		}
	}

	for _, e := range entries {
		if e.Left != tree.NoNode {
			if err := g.AddEdge(nodeName(e.ID), nodeName(e.Left), true, map[string]string{
				"label": strconv.Quote("L"),
			}); err != nil {
				return nil, err
			}
		}

		if e.Right != tree.NoNode {
			if err := g.AddEdge(nodeName(e.ID), nodeName(e.Right), true, map[string]string{
				"label": strconv.Quote("R"),
			}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
