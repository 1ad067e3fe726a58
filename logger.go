package streamstore

type (
	// Logger a structured logger interface
	Logger interface {
		Error(msg string, fields func(LoggerEntry))
		Warn(msg string, fields func(LoggerEntry))
		Info(msg string, fields func(LoggerEntry))
		Debug(msg string, fields func(LoggerEntry))

		WithFields(fields func(LoggerEntry)) Logger
	}

	// LoggerEntry represents the entry to be logger.
	// This entry can be enhanced with more date.
	LoggerEntry interface {
		Int(k string, v int)
		Int64(k string, v int64)
		Uint64(k string, v uint64)
		String(k, v string)
		Error(err error)
		Any(k string, v interface{})
	}
)

// NopLogger is a no-op Logger.
// This logger is used when a logger with the value `nil` is passed and avoids the need for `if logger != nil` everywhere
var NopLogger Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Error(string, func(LoggerEntry)) {}
func (nopLogger) Warn(string, func(LoggerEntry)) {}
func (nopLogger) Info(string, func(LoggerEntry)) {}
func (nopLogger) Debug(string, func(LoggerEntry)) {}

func (n nopLogger) WithFields(func(LoggerEntry)) Logger {
	return n
}
