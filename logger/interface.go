// Package logger is the structured logging contract of go-apitools.
//
// The request builder logs through Logger only, so callers can plug in their
// own implementation or use ZeroLogger, which writes zerolog JSON (or console
// output) and masks credential-looking fields before they are written.
package logger

// Logger creates leveled log events. The library never terminates the
// process, so the contract has no fatal level.
type Logger interface {
	Debug() LogEvent
	Info() LogEvent
	Warn() LogEvent
	Error() LogEvent
	// WithContext returns a logger carrying the request ID found in ctx, if any.
	WithContext(ctx any) Logger
	// WithFields returns a logger that adds fields to every event.
	WithFields(fields map[string]any) Logger
}

// LogEvent is a single log entry under construction. Msg writes it.
type LogEvent interface {
	Msg(msg string)
	Err(err error) LogEvent
	Str(key, value string) LogEvent
	Int(key string, value int) LogEvent
	Interface(key string, i any) LogEvent
	Bytes(key string, val []byte) LogEvent
}
