package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/hellofresh/streamstore"
)

// Ensure that we satisfy the streamstore.Metrics interface
var _ streamstore.Metrics = &Metrics{}

// Metrics is an mock type for the streamstore.Metrics type
type Metrics struct {
	mock.Mock
}

// StreamWritten provides a mock function with given fields: streamID, messages
func (_m *Metrics) StreamWritten(streamID string, messages int) {
	_m.Called(streamID, messages)
}

// StreamWriteConflicted provides a mock function with given fields: streamID
func (_m *Metrics) StreamWriteConflicted(streamID string) {
	_m.Called(streamID)
}

// StreamRead provides a mock function with given fields: direction, messages
func (_m *Metrics) StreamRead(direction streamstore.ReadDirection, messages int) {
	_m.Called(direction, messages)
}

// CategoryRead provides a mock function with given fields: messages
func (_m *Metrics) CategoryRead(messages int) {
	_m.Called(messages)
}
