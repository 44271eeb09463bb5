package plot

import "errors"

var (
	// ErrInvalidData indicates malformed point data.
	ErrInvalidData = errors.New("invalid point data")

	// ErrIndexOutOfRange indicates a selection names a missing point.
	ErrIndexOutOfRange = errors.New("selection index out of range")
)
