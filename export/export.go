// Package export renders a finished tree for external tools. It only
// relies on the read only description returned by Tree.Entries.
package export

import (
	"io"
	"os"

	"github.com/eaugeas/bstree/container/tree"
	errs "github.com/eaugeas/bstree/errors"
	"github.com/pkg/errors"
)

const (
	// FormatDOT is the Graphviz digraph format
	FormatDOT = "dot"

	// FormatText is an indented text tree
	FormatText = "text"
)

// ErrUnknownFormat is returned when asked to export to a
// format that is not supported
var ErrUnknownFormat = errs.New(errs.ErrorCodeExport, "unknown export format")

// Write exports the tree to w in the requested format
func Write(w io.Writer, t *tree.Tree, format string) error {
	switch format {
	case FormatDOT:
		return DOT(w, t)
	case FormatText:
		_, err := io.WriteString(w, Text(t))
		return err
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

// WriteFile exports the tree to the file at path, creating or
// truncating it
func WriteFile(path string, t *tree.Tree, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if err := Write(f, t, format); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}

	return nil
}

// DOTFile writes the Graphviz description of the tree to the file
// at path
func DOTFile(path string, t *tree.Tree) error {
	return WriteFile(path, t, FormatDOT)
}
