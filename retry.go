package streamstore

import (
	"context"

	"github.com/pkg/errors"
)

// DecideFunc returns the messages to append given the current version and messages of a stream
type DecideFunc func(version StreamVersion, messages []StreamMessage) ([]Message, error)

// WriteWithRetry reads the stream, asks decide for the messages to append and writes them using the read version
// as the expected version.
// When the write fails due to a version conflict the stream is read again and decide is called again, until maxAttempts
// writes were attempted. Any other error is returned immediately.
func WriteWithRetry(
	ctx context.Context,
	store StreamStore,
	streamID string,
	maxAttempts int,
	decide DecideFunc,
) (StreamVersion, error) {
	switch {
	case store == nil:
		return NoStream(), InvalidArgumentError("store")
	case maxAttempts < 1:
		return NoStream(), InvalidArgumentError("maxAttempts must be greater then zero")
	case decide == nil:
		return NoStream(), InvalidArgumentError("decide")
	}

	var conflict error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return NoStream(), err
		}

		version, messages, err := store.ReadFromStream(ctx, streamID, Forwards)
		if err != nil {
			return NoStream(), errors.Wrapf(err, "streamstore: failed to read stream %q", streamID)
		}

		batch, err := decide(version, messages)
		if err != nil {
			return NoStream(), err
		}

		newVersion, err := store.WriteToStream(ctx, streamID, version, batch)
		if err == nil {
			return newVersion, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return NoStream(), err
		}

		conflict = err
	}

	return NoStream(), errors.Wrapf(conflict, "streamstore: giving up after %d attempts", maxAttempts)
}
