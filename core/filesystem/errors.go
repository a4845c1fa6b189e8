package filesystem

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrOperationFailed is the single failure kind reported for backend faults. Network,
	// authentication, missing objects and permission problems all collapse into it.
	ErrOperationFailed = errors.New("storage operation failed")
	// ErrUnsupported is returned when the backing adapter lacks an optional capability.
	ErrUnsupported = errors.New("operation not supported by adapter")
	// ErrInvalidArgument is returned for caller-side misuse.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Errorf creates a formatted error wrapping a sentinel error
func Errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
