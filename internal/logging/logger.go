// Package logging provides the structured logging abstraction used by every
// fintrack component. Components depend on Logger, never on logrus directly.
package logging

// Logger is the structured logger handed to components through constructors.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger carrying err on every entry.
	WithError(err error) Logger

	// WithField returns a derived logger carrying a single field.
	WithField(key string, value interface{}) Logger

	// WithFields returns a derived logger carrying the given fields.
	WithFields(fields ...Field) Logger

	// Fatal logs and terminates the process.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// NewField is shorthand for Field{Key: key, Value: value}.
func NewField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
