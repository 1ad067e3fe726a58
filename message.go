package streamstore

import (
	"github.com/google/uuid"
)

type (
	// UUID is a 128 bit (16 byte) Universal Unique Identifier as defined in RFC4122
	UUID = uuid.UUID

	// Message is a message that can be written into a stream.
	// The store never inspects Type, Data or Metadata, it only keeps a copy and returns it unchanged.
	Message struct {
		// Type identifies the kind of message
		Type string
		// Data is the payload of the message
		Data []byte
		// Metadata holds auxiliary information about the message
		Metadata []byte
	}

	// MessagePosition is the location of a stored message
	MessagePosition struct {
		// Revision is the zero-based index of the message within its stream
		Revision uint64
		// Position is the zero-based index of the message in the store wide log
		Position uint64
	}

	// StreamMessage is a message as it was stored in a stream
	StreamMessage struct {
		ID       UUID
		StreamID string
		Message
		Position MessagePosition
	}
)

// GenerateUUID creates a new random UUID or panics
func GenerateUUID() UUID {
	return uuid.New()
}

// IsUUIDEmpty returns true if the UUID is empty
func IsUUIDEmpty(id UUID) bool {
	return id == uuid.Nil
}

// Copy returns a deep copy of the message
func (m Message) Copy() Message {
	return Message{
		Type:     m.Type,
		Data:     copyBytes(m.Data),
		Metadata: copyBytes(m.Metadata),
	}
}

// Copy returns a deep copy of the stream message
func (m StreamMessage) Copy() StreamMessage {
	m.Message = m.Message.Copy()
	return m
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	c := make([]byte, len(b))
	copy(c, b)

	return c
}
