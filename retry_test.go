//go:build unit
// +build unit

package streamstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hellofresh/streamstore"
	"github.com/hellofresh/streamstore/mocks"
)

func TestWriteWithRetry(t *testing.T) {
	ctx := context.Background()
	batch := []streamstore.Message{{Type: "Deposited", Data: []byte("10")}}
	decideBatch := func(streamstore.StreamVersion, []streamstore.StreamMessage) ([]streamstore.Message, error) {
		return batch, nil
	}

	t.Run("Write on first attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewStreamStore(ctrl)
		gomock.InOrder(
			store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
				Return(streamstore.Revision(1), make([]streamstore.StreamMessage, 2), nil),
			store.EXPECT().WriteToStream(ctx, "account-1", streamstore.Revision(1), batch).
				Return(streamstore.Revision(2), nil),
		)

		var seenVersion streamstore.StreamVersion
		version, err := streamstore.WriteWithRetry(ctx, store, "account-1", 3, func(v streamstore.StreamVersion, m []streamstore.StreamMessage) ([]streamstore.Message, error) {
			seenVersion = v
			assert.Len(t, m, 2)
			return batch, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, streamstore.Revision(2), version)
		assert.Equal(t, streamstore.Revision(1), seenVersion)
	})

	t.Run("Retry after a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		conflict := streamstore.NewVersionConflictError("account-1", streamstore.NoStream(), streamstore.Revision(0))

		store := mocks.NewStreamStore(ctrl)
		gomock.InOrder(
			store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
				Return(streamstore.NoStream(), nil, nil),
			store.EXPECT().WriteToStream(ctx, "account-1", streamstore.NoStream(), batch).
				Return(streamstore.NoStream(), conflict),
			store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
				Return(streamstore.Revision(0), make([]streamstore.StreamMessage, 1), nil),
			store.EXPECT().WriteToStream(ctx, "account-1", streamstore.Revision(0), batch).
				Return(streamstore.Revision(1), nil),
		)

		version, err := streamstore.WriteWithRetry(ctx, store, "account-1", 3, decideBatch)

		assert.NoError(t, err)
		assert.Equal(t, streamstore.Revision(1), version)
	})

	t.Run("Give up after max attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		conflict := streamstore.NewVersionConflictError("account-1", streamstore.NoStream(), streamstore.Revision(0))

		store := mocks.NewStreamStore(ctrl)
		store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
			Return(streamstore.NoStream(), nil, nil).
			Times(2)
		store.EXPECT().WriteToStream(ctx, "account-1", streamstore.NoStream(), batch).
			Return(streamstore.NoStream(), conflict).
			Times(2)

		version, err := streamstore.WriteWithRetry(ctx, store, "account-1", 2, decideBatch)

		asserts := assert.New(t)
		asserts.Equal(streamstore.NoStream(), version)
		asserts.True(errors.Is(err, streamstore.ErrVersionConflict))

		var conflictErr *streamstore.VersionConflictError
		asserts.True(errors.As(err, &conflictErr))
		asserts.Contains(err.Error(), "giving up after 2 attempts")
	})

	t.Run("Do not retry other errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewStreamStore(ctrl)
		store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
			Return(streamstore.NoStream(), nil, nil)
		store.EXPECT().WriteToStream(ctx, "account-1", streamstore.NoStream(), nil).
			Return(streamstore.NoStream(), streamstore.ErrEmptyBatch)

		_, err := streamstore.WriteWithRetry(ctx, store, "account-1", 5, func(streamstore.StreamVersion, []streamstore.StreamMessage) ([]streamstore.Message, error) {
			return nil, nil
		})

		assert.Equal(t, streamstore.ErrEmptyBatch, err)
	})

	t.Run("Decide error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expectedErr := errors.New("insufficient funds")

		store := mocks.NewStreamStore(ctrl)
		store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
			Return(streamstore.Revision(0), make([]streamstore.StreamMessage, 1), nil)

		_, err := streamstore.WriteWithRetry(ctx, store, "account-1", 5, func(streamstore.StreamVersion, []streamstore.StreamMessage) ([]streamstore.Message, error) {
			return nil, expectedErr
		})

		assert.Equal(t, expectedErr, err)
	})

	t.Run("Read error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expectedErr := errors.New("connection lost")

		store := mocks.NewStreamStore(ctrl)
		store.EXPECT().ReadFromStream(ctx, "account-1", streamstore.Forwards).
			Return(streamstore.NoStream(), nil, expectedErr)

		_, err := streamstore.WriteWithRetry(ctx, store, "account-1", 5, decideBatch)

		assert.True(t, errors.Is(err, expectedErr))
		assert.Contains(t, err.Error(), `failed to read stream "account-1"`)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		store := mocks.NewStreamStore(ctrl)

		_, err := streamstore.WriteWithRetry(cancelledCtx, store, "account-1", 5, decideBatch)

		assert.Equal(t, context.Canceled, err)
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewStreamStore(ctrl)

		testCases := []struct {
			title       string
			store       streamstore.StreamStore
			maxAttempts int
			decide      streamstore.DecideFunc
		}{
			{"nil store", nil, 1, decideBatch},
			{"zero attempts", store, 0, decideBatch},
			{"negative attempts", store, -1, decideBatch},
			{"nil decide", store, 1, nil},
		}

		for _, testCase := range testCases {
			t.Run(testCase.title, func(t *testing.T) {
				_, err := streamstore.WriteWithRetry(ctx, testCase.store, "account-1", testCase.maxAttempts, testCase.decide)

				assert.IsType(t, streamstore.InvalidArgumentError(""), err)
			})
		}
	})
}
