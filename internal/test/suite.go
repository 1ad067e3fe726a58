package test

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/hellofresh/streamstore"
	logrusExtension "github.com/hellofresh/streamstore/extension/logrus"
)

// Suite is an extension of github.com/stretchr/testify/suite.Suite
type Suite struct {
	suite.Suite

	Logrus     *logrus.Logger
	LoggerHook *test.Hook
}

// SetupTest set logrus output to use the current testing.T
func (s *Suite) SetupTest() {
	s.Logrus = logrus.New()
	s.Logrus.SetLevel(logrus.DebugLevel)
	s.Logrus.SetOutput(newLogWriter(s.T()))

	s.LoggerHook = test.NewLocal(s.Logrus)
}

// TearDownTest cleanup suite variables
func (s *Suite) TearDownTest() {
	s.Logrus = nil
}

// SetT sets the current *testing.T context
func (s *Suite) SetT(t *testing.T) {
	s.Suite.SetT(t)

	if s.Logrus != nil {
		s.Logrus.SetOutput(newLogWriter(t))
	}
}

// Run runs f as a subtest of t called name.
func (s *Suite) Run(name string, f func()) bool {
	parentT := s.T()
	return parentT.Run(name, func(t *testing.T) {
		s.SetT(t)
		defer s.SetT(parentT)

		f()
	})
}

// Logger returns the suite logger as a streamstore.Logger
func (s *Suite) Logger() streamstore.Logger {
	return logrusExtension.Wrap(s.Logrus)
}

// AssertNoLogsWithLevelOrHigher check that there are now log entries witch or of the given level or higher
// For example `AssertNoLogsWithLevelOrHigher(logrus.ErrorLevel)` will assert that no log entries with level error, fatal or panic where recorded.
func (s *Suite) AssertNoLogsWithLevelOrHigher(lvl logrus.Level) {
	assert := s.Assert()
	for _, logEntry := range s.LoggerHook.AllEntries() {
		assert.False(
			logEntry.Level <= lvl,
			"No error level log was expected but got: %s",
			logEntry.Message,
		)
	}
}

// logWriter pushes every write to t.Log so log output is shown next to the test that produced it
type logWriter struct {
	t testing.TB
}

var _ io.Writer = &logWriter{}

func newLogWriter(t testing.TB) *logWriter {
	return &logWriter{t: t}
}

func (l *logWriter) Write(p []byte) (int, error) {
	l.t.Helper()
	l.t.Log(strings.TrimSpace(string(p)))

	return len(p), nil
}
