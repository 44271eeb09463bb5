package selection

import "errors"

var (
	// ErrUnknownMode indicates an unrecognized combination mode name.
	ErrUnknownMode = errors.New("unknown selection mode")

	// ErrUnsupportedGeometry indicates an applier cannot handle a geometry kind.
	ErrUnsupportedGeometry = errors.New("unsupported selection geometry")
)
