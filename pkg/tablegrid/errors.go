package tablegrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrStaleSnapshot indicates an action was derived from a grid snapshot
// that is no longer the latest one.
var ErrStaleSnapshot = errors.New("stale snapshot")

// OperationError represents an error while moving a grid in or out of a
// file.
type OperationError struct {
	Target    string // file or sheet the operation worked on
	Component string // "open", "read", "write", "save"
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Component, e.Target, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(target, component string, err error) *OperationError {
	return &OperationError{
		Target:    target,
		Component: component,
		Err:       err,
	}
}
