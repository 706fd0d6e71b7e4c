package project

import "errors"

// Sentinel errors returned by record and store operations. Callers should
// match them with errors.Is (or the helpers below) rather than comparing
// messages, since operations wrap them with additional context.
var (
	// ErrNotFound indicates an unknown project ID, comment ID, or a file
	// path that does not exist on disk.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a malformed or contradictory request,
	// such as updating a file to its current path or a negative quantity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation indicates an operation name that does not
	// correspond to any known mutation.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// IsNotFound returns true if the error is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument returns true if the error is, or wraps, ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnsupportedOperation returns true if the error is, or wraps, ErrUnsupportedOperation.
func IsUnsupportedOperation(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}
