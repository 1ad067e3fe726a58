package inmemory

import (
	"context"
	"sync"

	"github.com/hellofresh/streamstore"
)

var (
	// Ensure that we satisfy the streamstore.StreamStore interface
	_ streamstore.StreamStore = &StreamStore{}
	// Ensure that we satisfy the streamstore.CategoryReader interface
	_ streamstore.CategoryReader = &StreamStore{}
)

// StreamStore a in memory stream store implementation
//
// All messages are kept in a single append-only log.
// Streams and categories are indexes of positions into that log.
// A single lock guards the log and the indexes, so writes are serialized while reads can run concurrently.
type StreamStore struct {
	sync.RWMutex

	logger  streamstore.Logger
	metrics streamstore.Metrics

	log        []streamstore.StreamMessage
	streams    *positionIndex
	categories *positionIndex
}

// NewStreamStore return a new inmemory.StreamStore
func NewStreamStore(logger streamstore.Logger, metrics streamstore.Metrics) *StreamStore {
	if logger == nil {
		logger = streamstore.NopLogger
	}
	if metrics == nil {
		metrics = streamstore.NopMetrics
	}

	return &StreamStore{
		logger:     logger,
		metrics:    metrics,
		streams:    newPositionIndex(),
		categories: newPositionIndex(),
	}
}

// WriteToStream appends the messages to the stream if the stream is at the expected version
func (s *StreamStore) WriteToStream(
	ctx context.Context,
	streamID string,
	expected streamstore.StreamVersion,
	messages []streamstore.Message,
) (streamstore.StreamVersion, error) {
	if len(messages) == 0 {
		s.logger.Debug("rejected write without messages", func(e streamstore.LoggerEntry) {
			e.String("stream_id", streamID)
		})
		return streamstore.NoStream(), streamstore.ErrEmptyBatch
	}

	s.Lock()
	defer s.Unlock()

	current := s.streamVersion(streamID)
	if current != expected {
		s.logger.Debug("rejected write due to a version conflict", func(e streamstore.LoggerEntry) {
			e.String("stream_id", streamID)
			e.String("expected_version", expected.String())
			e.String("actual_version", current.String())
		})
		s.metrics.StreamWriteConflicted(streamID)

		return streamstore.NoStream(), streamstore.NewVersionConflictError(streamID, expected, current)
	}

	newVersion, err := current.Advance(uint64(len(messages)))
	if err != nil {
		return streamstore.NoStream(), err
	}

	// The batch is complete before the log is touched
	revision := current.Length()
	position := uint64(len(s.log))
	batch := make([]streamstore.StreamMessage, len(messages))
	for i, msg := range messages {
		batch[i] = streamstore.StreamMessage{
			ID:       streamstore.GenerateUUID(),
			StreamID: streamID,
			Message:  msg.Copy(),
			Position: streamstore.MessagePosition{
				Revision: revision + uint64(i),
				Position: position + uint64(i),
			},
		}
	}

	category := streamstore.Category(streamID)
	for _, msg := range batch {
		s.log = append(s.log, msg)
		s.streams.add(streamID, msg.Position.Position)
		s.categories.add(category, msg.Position.Position)
	}

	s.logger.Debug("appended messages to stream", func(e streamstore.LoggerEntry) {
		e.String("stream_id", streamID)
		e.Int("message_count", len(batch))
		e.String("version", newVersion.String())
	})
	s.metrics.StreamWritten(streamID, len(batch))

	return newVersion, nil
}

// ReadFromStream returns the current version and all messages of the stream in the given direction
func (s *StreamStore) ReadFromStream(
	ctx context.Context,
	streamID string,
	direction streamstore.ReadDirection,
) (streamstore.StreamVersion, []streamstore.StreamMessage, error) {
	if direction != streamstore.Forwards && direction != streamstore.Backwards {
		return streamstore.NoStream(), nil, streamstore.InvalidArgumentError("direction")
	}

	s.RLock()
	defer s.RUnlock()

	positions := s.streams.get(streamID)
	count := len(positions)

	messages := make([]streamstore.StreamMessage, count)
	for i, position := range positions {
		idx := i
		if direction == streamstore.Backwards {
			idx = count - 1 - i
		}
		messages[idx] = s.log[position].Copy()
	}

	s.metrics.StreamRead(direction, count)

	return s.streamVersion(streamID), messages, nil
}

// ReadFromCategory returns the messages of all streams in the category starting at the given log position
func (s *StreamStore) ReadFromCategory(
	ctx context.Context,
	category string,
	fromPosition uint64,
	maxMessages int,
) ([]streamstore.StreamMessage, error) {
	if category == "" {
		return nil, streamstore.InvalidArgumentError("category must not be empty")
	}

	s.RLock()
	defer s.RUnlock()

	positions := s.categories.from(category, fromPosition)
	if maxMessages > 0 && maxMessages < len(positions) {
		positions = positions[:maxMessages]
	}

	messages := make([]streamstore.StreamMessage, len(positions))
	for i, position := range positions {
		messages[i] = s.log[position].Copy()
	}

	s.metrics.CategoryRead(len(messages))

	return messages, nil
}

// streamVersion returns the version of the stream derived from the number of messages it holds.
// The caller must hold the lock.
func (s *StreamStore) streamVersion(streamID string) streamstore.StreamVersion {
	count := len(s.streams.get(streamID))
	if count == 0 {
		return streamstore.NoStream()
	}

	return streamstore.Revision(uint64(count - 1))
}
