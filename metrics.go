package streamstore

type (
	// Metrics a structured metrics interface
	Metrics interface {
		// StreamWritten is called after messages where appended to a stream
		StreamWritten(streamID string, messages int)
		// StreamWriteConflicted is called when a write was rejected due to a version conflict
		StreamWriteConflicted(streamID string)
		// StreamRead is called after a stream was read
		StreamRead(direction ReadDirection, messages int)
		// CategoryRead is called after a category was read
		CategoryRead(messages int)
	}
)
