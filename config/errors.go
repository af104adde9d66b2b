package config

import (
	"fmt"

	errs "github.com/eaugeas/bstree/errors"
)

// ErrAlreadyParsed is returned when attempting to parse the
// command line more than once
var ErrAlreadyParsed = errs.New(errs.ErrorCodeInvalidConfig, "flags already parsed")

// ErrInvalidValue is returned when a configuration value cannot
// be converted to the expected type
var ErrInvalidValue = errs.New(errs.ErrorCodeInvalidConfig, "invalid configuration value")

// ErrParseFlags is returned when the command line cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// Unwrap returns the cause of the error
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// ErrReadConfigFile is returned when the configuration file cannot
// be read
type ErrReadConfigFile struct {
	Path  string
	Cause error
}

// Error implementation of error for ErrReadConfigFile
func (e ErrReadConfigFile) Error() string {
	return fmt.Sprintf("failed to read configuration file %s: %s", e.Path, e.Cause.Error())
}

// Unwrap returns the cause of the error
func (e ErrReadConfigFile) Unwrap() error {
	return e.Cause
}
