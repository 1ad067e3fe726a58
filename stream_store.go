package streamstore

import "context"

type (
	// StreamWriter writes messages to a stream using optimistic concurrency control
	StreamWriter interface {
		// WriteToStream appends the messages to the stream when the stream is at the expected version.
		// All messages are appended or none are.
		// On success the new version of the stream is returned.
		// A *VersionConflictError is returned when the stream is not at the expected version and
		// ErrEmptyBatch is returned when no messages are provided.
		WriteToStream(ctx context.Context, streamID string, expected StreamVersion, messages []Message) (StreamVersion, error)
	}

	// StreamReader reads a stream in its entirety
	StreamReader interface {
		// ReadFromStream returns the current version of the stream and all its messages in the requested direction.
		// A stream that was never written to results in NoStream and no messages.
		ReadFromStream(ctx context.Context, streamID string, direction ReadDirection) (StreamVersion, []StreamMessage, error)
	}

	// CategoryReader reads the messages of all streams belonging to a category
	CategoryReader interface {
		// ReadFromCategory returns the messages of the category in the order they were appended to the store.
		// Only messages with a position of at least fromPosition are returned.
		// A maxMessages of zero or less returns all remaining messages.
		ReadFromCategory(ctx context.Context, category string, fromPosition uint64, maxMessages int) ([]StreamMessage, error)
	}

	// StreamStore a stream store that can be written to and read from
	StreamStore interface {
		StreamWriter
		StreamReader
	}
)
