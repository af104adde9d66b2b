package tree

import errs "github.com/eaugeas/bstree/errors"

var (
	// ErrEmptyTree is returned by operations that require at
	// least one node in the tree
	ErrEmptyTree = errs.New(errs.ErrorCodeEmptyTree, "tree is empty")

	// ErrNilNode is the panic value of node operations invoked on a nil node
	ErrNilNode = errs.New(errs.ErrorCodeNilNode, "operation on a nil node")

	// ErrBrokenLink reports a node whose parent does not hold it as a
	// child, or a child whose parent reference points elsewhere
	ErrBrokenLink = errs.New(errs.ErrorCodeBrokenLink, "parent and child links disagree")

	// ErrOrderViolation reports a key that breaks the search tree ordering
	ErrOrderViolation = errs.New(errs.ErrorCodeOrderViolation, "key out of order")
)
