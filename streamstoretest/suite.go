// Package streamstoretest provides a test suite that verifies the behaviour of a streamstore.StreamStore implementation.
//
// Every backend is expected to pass this suite in order to be substitutable for another:
//
//	func TestStreamStore(t *testing.T) {
//		suite.Run(t, streamstoretest.NewSuite(func(logger streamstore.Logger) streamstore.StreamStore {
//			return mybackend.New(logger)
//		}))
//	}
package streamstoretest

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hellofresh/streamstore"
	"github.com/hellofresh/streamstore/internal/test"
)

// StoreFactory returns a new and empty StreamStore
type StoreFactory func(logger streamstore.Logger) streamstore.StreamStore

// Suite a testify suite asserting the stream store contract
type Suite struct {
	test.Suite

	factory StoreFactory
	store   streamstore.StreamStore
}

// NewSuite returns a Suite that runs against stores created by the factory
func NewSuite(factory StoreFactory) *Suite {
	return &Suite{factory: factory}
}

// SetupTest creates a new store for every test
func (s *Suite) SetupTest() {
	s.Suite.SetupTest()

	s.store = s.factory(s.Logger())
}

// TearDownTest verifies that nothing was logged with level warning or higher
func (s *Suite) TearDownTest() {
	s.AssertNoLogsWithLevelOrHigher(logrus.WarnLevel)

	s.store = nil
	s.Suite.TearDownTest()
}

// Store returns the store under test
func (s *Suite) Store() streamstore.StreamStore {
	return s.store
}

func (s *Suite) TestReadUnknownStream() {
	for _, direction := range []streamstore.ReadDirection{streamstore.Forwards, streamstore.Backwards} {
		s.Run(direction.String(), func() {
			version, messages, err := s.store.ReadFromStream(context.Background(), "never-written", direction)

			s.Require().NoError(err)
			s.Equal(streamstore.NoStream(), version)
			s.Empty(messages)
		})
	}
}

func (s *Suite) TestWriteFirstMessage() {
	ctx := context.Background()
	msg := Message("Created", 0)

	version, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), []streamstore.Message{msg})
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(0), version)

	version, messages, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(0), version)
	s.Equal([]streamstore.Message{msg}, Messages(messages))

	s.Require().Len(messages, 1)
	s.Equal("account-1", messages[0].StreamID)
	s.Equal(uint64(0), messages[0].Position.Revision)
	s.False(streamstore.IsUUIDEmpty(messages[0].ID))
}

func (s *Suite) TestBatchVersioning() {
	ctx := context.Background()
	first := Batch("Deposited", 0, 3)
	second := Batch("Withdrawn", 3, 2)

	version, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), first)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(2), version)

	version, err = s.store.WriteToStream(ctx, "account-1", streamstore.Revision(2), second)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(4), version)

	version, messages, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(4), version)
	s.Equal(append(first, second...), Messages(messages))

	for i, msg := range messages {
		s.Equal(uint64(i), msg.Position.Revision)
	}
}

func (s *Suite) TestVersionConflict() {
	ctx := context.Background()
	original := Message("Created", 0)

	_, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), []streamstore.Message{original})
	s.Require().NoError(err)

	testCases := []struct {
		title    string
		expected streamstore.StreamVersion
	}{
		{"stream already exists", streamstore.NoStream()},
		{"expected version ahead", streamstore.Revision(1)},
		{"expected version far ahead", streamstore.Revision(99)},
	}

	for _, testCase := range testCases {
		s.Run(testCase.title, func() {
			version, err := s.store.WriteToStream(ctx, "account-1", testCase.expected, Batch("Other", 1, 2))

			s.Require().Error(err)
			s.ErrorIs(err, streamstore.ErrVersionConflict)
			s.Equal(streamstore.NoStream(), version)

			var conflict *streamstore.VersionConflictError
			if s.ErrorAs(err, &conflict) {
				s.Equal("account-1", conflict.StreamID)
				s.Equal(testCase.expected, conflict.Expected)
				s.Equal(streamstore.Revision(0), conflict.Actual)
			}

			version, messages, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
			s.Require().NoError(err)
			s.Equal(streamstore.Revision(0), version)
			s.Equal([]streamstore.Message{original}, Messages(messages))
		})
	}

	s.Run("revision expected for unknown stream", func() {
		_, err := s.store.WriteToStream(ctx, "account-2", streamstore.Revision(0), Batch("Other", 0, 1))
		s.ErrorIs(err, streamstore.ErrVersionConflict)

		version, messages, err := s.store.ReadFromStream(ctx, "account-2", streamstore.Forwards)
		s.Require().NoError(err)
		s.Equal(streamstore.NoStream(), version)
		s.Empty(messages)
	})
}

func (s *Suite) TestDirectionSymmetry() {
	ctx := context.Background()
	messages := Batch("Deposited", 0, 3)

	var expected streamstore.StreamVersion
	for _, msg := range messages {
		version, err := s.store.WriteToStream(ctx, "account-1", expected, []streamstore.Message{msg})
		s.Require().NoError(err)
		expected = version
	}

	forwardsVersion, forwards, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)
	backwardsVersion, backwards, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Backwards)
	s.Require().NoError(err)

	s.Equal(streamstore.Revision(2), forwardsVersion)
	s.Equal(forwardsVersion, backwardsVersion)
	s.Equal(messages, Messages(forwards))
	s.Equal([]streamstore.Message{messages[2], messages[1], messages[0]}, Messages(backwards))
	s.Equal(uint64(2), backwards[0].Position.Revision)
}

func (s *Suite) TestEmptyBatch() {
	ctx := context.Background()

	_, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), Batch("Created", 0, 1))
	s.Require().NoError(err)

	testCases := []struct {
		title    string
		streamID string
		expected streamstore.StreamVersion
		messages []streamstore.Message
	}{
		{"nil batch unknown stream", "account-2", streamstore.NoStream(), nil},
		{"empty batch unknown stream", "account-2", streamstore.Revision(5), []streamstore.Message{}},
		{"empty batch matching version", "account-1", streamstore.Revision(0), []streamstore.Message{}},
		{"empty batch conflicting version", "account-1", streamstore.NoStream(), nil},
	}

	for _, testCase := range testCases {
		s.Run(testCase.title, func() {
			_, err := s.store.WriteToStream(ctx, testCase.streamID, testCase.expected, testCase.messages)
			s.ErrorIs(err, streamstore.ErrEmptyBatch)
		})
	}

	version, messages, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(0), version)
	s.Len(messages, 1)

	version, messages, err = s.store.ReadFromStream(ctx, "account-2", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(streamstore.NoStream(), version)
	s.Empty(messages)
}

func (s *Suite) TestConcurrentWritersOnFreshStream() {
	const writers = 8
	ctx := context.Background()

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]error, writers)
	versions := make([]streamstore.StreamVersion, writers)

	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			<-start

			versions[w], results[w] = s.store.WriteToStream(
				ctx,
				"race-1",
				streamstore.NoStream(),
				Batch(fmt.Sprintf("Writer%d", w), 0, w+1),
			)
		}(w)
	}
	close(start)
	wg.Wait()

	winner := -1
	for w, err := range results {
		if err == nil {
			s.Equal(-1, winner, "only one writer may succeed")
			winner = w
			continue
		}
		s.ErrorIs(err, streamstore.ErrVersionConflict)
	}
	s.Require().NotEqual(-1, winner, "one writer must succeed")
	s.Equal(streamstore.Revision(uint64(winner)), versions[winner])

	version, messages, err := s.store.ReadFromStream(ctx, "race-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(versions[winner], version)
	s.Equal(Batch(fmt.Sprintf("Writer%d", winner), 0, winner+1), Messages(messages))
}

func (s *Suite) TestConcurrentRetryingWritersKeepOrder() {
	const (
		writers         = 10
		writesPerWriter = 10
	)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < writesPerWriter; i++ {
				// Each batch holds two messages that must stay adjacent
				batch := []streamstore.Message{
					Message(fmt.Sprintf("Writer%d", w), i*2),
					Message(fmt.Sprintf("Writer%d", w), i*2+1),
				}
				_, err := streamstore.WriteWithRetry(ctx, s.store, "shared-1", 1000, func(streamstore.StreamVersion, []streamstore.StreamMessage) ([]streamstore.Message, error) {
					return batch, nil
				})
				s.NoError(err)
			}
		}(w)
	}
	wg.Wait()

	version, messages, err := s.store.ReadFromStream(ctx, "shared-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(writers*writesPerWriter*2-1), version)
	s.Require().Len(messages, writers*writesPerWriter*2)

	next := map[string]int{}
	for i := 0; i < len(messages); i += 2 {
		first, second := messages[i], messages[i+1]
		s.Equal(first.Type, second.Type, "batch was interleaved")
		s.Equal(next[first.Type], int(first.Data[0]), "batches of a writer are out of order")
		s.Equal(next[first.Type]+1, int(second.Data[0]), "batch is out of order")
		next[first.Type] += 2

		s.Equal(uint64(i), first.Position.Revision)
		s.Equal(uint64(i+1), second.Position.Revision)
	}
}

func (s *Suite) TestConcurrentReadsAreSnapshots() {
	const batches = 50
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)

		version := streamstore.NoStream()
		for i := 0; i < batches; i++ {
			var err error
			version, err = s.store.WriteToStream(ctx, "snapshot-1", version, Batch("Batch", i*3, 3))
			if !s.NoError(err) {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}

		version, messages, err := s.store.ReadFromStream(ctx, "snapshot-1", streamstore.Forwards)
		s.Require().NoError(err)
		s.Equal(version.Length(), uint64(len(messages)))
		s.Zero(len(messages)%3, "read observed a partial batch")
		for i, msg := range messages {
			s.Equal(uint64(i), msg.Position.Revision)
		}
	}
}

func (s *Suite) TestReadIsIdempotent() {
	ctx := context.Background()

	_, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), Batch("Deposited", 0, 4))
	s.Require().NoError(err)

	for _, direction := range []streamstore.ReadDirection{streamstore.Forwards, streamstore.Backwards} {
		firstVersion, first, err := s.store.ReadFromStream(ctx, "account-1", direction)
		s.Require().NoError(err)
		secondVersion, second, err := s.store.ReadFromStream(ctx, "account-1", direction)
		s.Require().NoError(err)

		s.Equal(firstVersion, secondVersion)
		s.Equal(first, second)
	}
}

func (s *Suite) TestMessagesAreIsolatedFromCallers() {
	ctx := context.Background()
	msg := streamstore.Message{
		Type:     "Created",
		Data:     []byte("data"),
		Metadata: []byte("metadata"),
	}
	batch := []streamstore.Message{msg}

	_, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), batch)
	s.Require().NoError(err)

	// Mutating the written message must not alter the stored one
	batch[0].Data[0] = 'X'
	batch[0].Metadata[0] = 'X'
	batch[0].Type = "Changed"

	_, messages, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)
	s.Equal("Created", messages[0].Type)
	s.Equal([]byte("data"), messages[0].Data)
	s.Equal([]byte("metadata"), messages[0].Metadata)

	// Mutating a read result must not alter the stored one
	messages[0].Data[0] = 'Y'

	_, messages, err = s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal([]byte("data"), messages[0].Data)
}

func (s *Suite) TestStreamsAreIndependent() {
	ctx := context.Background()

	_, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), Batch("Deposited", 0, 3))
	s.Require().NoError(err)

	version, err := s.store.WriteToStream(ctx, "account-2", streamstore.NoStream(), Batch("Deposited", 10, 1))
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(0), version)

	version, messages, err := s.store.ReadFromStream(ctx, "account-2", streamstore.Forwards)
	s.Require().NoError(err)
	s.Equal(streamstore.Revision(0), version)
	s.Equal(Batch("Deposited", 10, 1), Messages(messages))
}

func (s *Suite) TestMessageIdentity() {
	ctx := context.Background()

	_, err := s.store.WriteToStream(ctx, "account-1", streamstore.NoStream(), Batch("Deposited", 0, 5))
	s.Require().NoError(err)

	_, messages, err := s.store.ReadFromStream(ctx, "account-1", streamstore.Forwards)
	s.Require().NoError(err)

	seen := map[streamstore.UUID]bool{}
	for _, msg := range messages {
		s.False(streamstore.IsUUIDEmpty(msg.ID))
		s.False(seen[msg.ID], "message id %s is not unique", msg.ID)
		seen[msg.ID] = true
	}
}
