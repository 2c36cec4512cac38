package interfaces

import "context"

// Logger is the minimal structured logging contract storefront services depend
// on. Implementations accept alternating key/value pairs in args.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider exposes named loggers. Implementations can return the same
// instance for every name or scope loggers per module.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that can attach structured
// fields up front.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
