package streamstore

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionConflict occurs when the expected version of a write does not match the version of the stream
	ErrVersionConflict = errors.New("streamstore: wrong expected version")
	// ErrEmptyBatch occurs when a write is done without any messages
	ErrEmptyBatch = errors.New("streamstore: no messages to write")
	// ErrVersionOverflow occurs when a write would advance the stream revision beyond its maximum
	ErrVersionOverflow = errors.New("streamstore: stream revision overflow")
)

// InvalidArgumentError indicates that the caller is in error and passed an incorrect value.
type InvalidArgumentError string

func (i InvalidArgumentError) Error() string {
	return "streamstore: invalid argument: " + string(i)
}

// VersionConflictError an error indicating that a write was rejected because the stream was not at the expected version
type VersionConflictError struct {
	StreamID string
	Expected StreamVersion
	Actual   StreamVersion
}

// NewVersionConflictError return a VersionConflictError for the given stream
func NewVersionConflictError(streamID string, expected, actual StreamVersion) *VersionConflictError {
	return &VersionConflictError{
		StreamID: streamID,
		Expected: expected,
		Actual:   actual,
	}
}

// Error return the error message
func (e *VersionConflictError) Error() string {
	return fmt.Sprintf(
		"%s: stream %q expected %s but is at %s",
		ErrVersionConflict.Error(),
		e.StreamID,
		e.Expected,
		e.Actual,
	)
}

// Is allows errors.Is(err, ErrVersionConflict)
func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}
