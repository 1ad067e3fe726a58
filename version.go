package streamstore

import (
	"math"
	"strconv"
)

// StreamVersion is the version of a stream.
// It is either NoStream, for a stream that was never written to, or a Revision holding the
// zero-based index of the last message in the stream.
// The zero value is NoStream.
type StreamVersion struct {
	revision uint64
	exists   bool
}

// NoStream returns the version of a stream that has no messages
func NoStream() StreamVersion {
	return StreamVersion{}
}

// Revision returns the version of a stream whose last message has the given zero-based index
func Revision(n uint64) StreamVersion {
	return StreamVersion{revision: n, exists: true}
}

// IsNoStream returns true if the version represents a stream without messages
func (v StreamVersion) IsNoStream() bool {
	return !v.exists
}

// Revision returns the revision number and true, or 0 and false for NoStream
func (v StreamVersion) Revision() (uint64, bool) {
	return v.revision, v.exists
}

// Length returns the number of messages a stream at this version contains.
// Revision(math.MaxUint64) is the design ceiling and reports a length of 0.
func (v StreamVersion) Length() uint64 {
	if !v.exists {
		return 0
	}

	return v.revision + 1
}

// Advance returns the version after appending count messages.
// ErrVersionOverflow is returned when the resulting revision does not fit in an uint64.
func (v StreamVersion) Advance(count uint64) (StreamVersion, error) {
	if count == 0 {
		return v, nil
	}

	if !v.exists {
		return Revision(count - 1), nil
	}

	if count > math.MaxUint64-v.revision {
		return v, ErrVersionOverflow
	}

	return Revision(v.revision + count), nil
}

// Equal returns true if both versions are the same
func (v StreamVersion) Equal(other StreamVersion) bool {
	return v == other
}

// Compare returns -1, 0 or +1 depending on whether v is before, equal to or after other.
// NoStream is before every Revision.
func (v StreamVersion) Compare(other StreamVersion) int {
	switch {
	case v == other:
		return 0
	case !v.exists:
		return -1
	case !other.exists:
		return 1
	case v.revision < other.revision:
		return -1
	default:
		return 1
	}
}

// String returns a readable representation like NoStream or Revision(3)
func (v StreamVersion) String() string {
	if !v.exists {
		return "NoStream"
	}

	return "Revision(" + strconv.FormatUint(v.revision, 10) + ")"
}
