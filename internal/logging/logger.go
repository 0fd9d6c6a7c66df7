// Package logging decouples the converter from the concrete logging library.
// Components receive a Logger through their constructors; the CLI builds the
// logrus-backed implementation and tests use MockLogger.
package logging

// Logger is the structured logger used by every component.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger carrying err as context.
	WithError(err error) Logger
	// WithField returns a logger carrying one extra field.
	WithField(key string, value interface{}) Logger
	// WithFields returns a logger carrying several extra fields.
	WithFields(fields ...Field) Logger

	// Fatal logs and terminates the process.
	Fatal(msg string, fields ...Field)
	// Fatalf logs a formatted message and terminates the process.
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
