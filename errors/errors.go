package errors

import (
	stderr "errors"

	"github.com/eaugeas/bstree/logs"
)

const (
	// ErrorCodeEmptyTree is used when an operation that needs at least
	// one node is invoked on an empty tree
	ErrorCodeEmptyTree = 1000 + iota

	// ErrorCodeNilNode is used when a node operation receives no node
	ErrorCodeNilNode

	// ErrorCodeBrokenLink is used when parent and child links of
	// two nodes disagree
	ErrorCodeBrokenLink

	// ErrorCodeOrderViolation is used when a key is found on the wrong
	// side of one of its ancestors
	ErrorCodeOrderViolation

	// ErrorCodeInvalidConfig is used when the configuration provided
	// cannot be used
	ErrorCodeInvalidConfig

	// ErrorCodeExport is used when a tree cannot be exported
	ErrorCodeExport
)

// Error is the error returned by the library when an operation cannot
// be satisfied
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates a new Error
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// Fields describes err as log fields. When err wraps an Error its
// code and description are included
func Fields(err error) logs.Loggable {
	fields := logs.MapFields{"err": err.Error()}

	var e *Error
	if stderr.As(err, &e) {
		e.Log(fields)
	}

	return fields
}
