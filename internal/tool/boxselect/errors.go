package boxselect

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyDragging indicates a press arrived during a gesture.
	ErrAlreadyDragging = errors.New("gesture already in progress")

	// ErrNotDragging indicates a move, release or limits query with no gesture.
	ErrNotDragging = errors.New("no gesture in progress")

	// ErrConfigBusy indicates a configuration change during a gesture.
	ErrConfigBusy = errors.New("configuration cannot change during a gesture")

	// ErrInvalidConfig indicates a configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid box select configuration")

	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("unknown box select preset")

	// ErrMissingDependency indicates a nil collaborator.
	ErrMissingDependency = errors.New("missing dependency")
)

// PreconditionError is the panic value raised when the controller is
// driven out of order.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("boxselect: %s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}
