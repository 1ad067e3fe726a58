package streamstoretest

import (
	"strconv"

	"github.com/hellofresh/streamstore"
)

// Message returns a message of the given type whose first data byte is n
func Message(messageType string, n int) streamstore.Message {
	return streamstore.Message{
		Type:     messageType,
		Data:     []byte{byte(n)},
		Metadata: []byte(`{"n":` + strconv.Itoa(n) + `}`),
	}
}

// Batch returns count messages of the given type numbered from start
func Batch(messageType string, start, count int) []streamstore.Message {
	messages := make([]streamstore.Message, count)
	for i := range messages {
		messages[i] = Message(messageType, start+i)
	}

	return messages
}

// Messages returns the messages stored in the stream messages
func Messages(streamMessages []streamstore.StreamMessage) []streamstore.Message {
	messages := make([]streamstore.Message, len(streamMessages))
	for i, msg := range streamMessages {
		messages[i] = msg.Message
	}

	return messages
}
