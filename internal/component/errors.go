package component

import "errors"

// Sentinel errors for component addition.
var (
	// ErrUnsupportedComponent indicates a component kind that is
	// reserved but not implemented. The error message names the kind.
	ErrUnsupportedComponent = errors.New("component: unsupported component type")

	// ErrNameCollision indicates a generated artifact would overwrite
	// an existing file. Nothing is written when this is returned.
	ErrNameCollision = errors.New("component: artifact already exists")

	// ErrWriteFailure indicates a file write failed partway through a
	// batch. All files written by the batch are removed first.
	ErrWriteFailure = errors.New("component: write failure")
)
