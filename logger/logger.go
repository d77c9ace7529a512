package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	apitrace "github.com/gaborage/go-apitools/trace"
)

// ZeroLogger wraps zerolog.Logger to implement the Logger interface.
// Every field passes through a SensitiveDataFilter before it is written.
type ZeroLogger struct {
	zlog   *zerolog.Logger
	filter *SensitiveDataFilter
}

var _ Logger = (*ZeroLogger)(nil)

var callerMarshalOnce sync.Once

// New creates a logger writing to stdout with the default sensitive field list.
// If pretty is true, output will be formatted for human readability.
func New(level string, pretty bool) *ZeroLogger {
	return NewWithWriter(os.Stdout, level, pretty, nil)
}

// NewWithFilter creates a stdout logger with a custom filter configuration.
func NewWithFilter(level string, pretty bool, filterConfig *FilterConfig) *ZeroLogger {
	return NewWithWriter(os.Stdout, level, pretty, filterConfig)
}

// NewWithWriter creates a logger writing to w. An unknown level falls back to
// info; a nil filterConfig uses DefaultFilterConfig.
func NewWithWriter(w io.Writer, level string, pretty bool, filterConfig *FilterConfig) *ZeroLogger {
	callerMarshalOnce.Do(func() {
		zerolog.CallerMarshalFunc = shortCaller
	})

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().CallerWithSkipFrameCount(3).Logger()

	zLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		zLevel = zerolog.InfoLevel
	}
	l = l.Level(zLevel)

	return &ZeroLogger{zlog: &l, filter: NewSensitiveDataFilter(filterConfig)}
}

// shortCaller renders "parent/file.go:line".
func shortCaller(_ uintptr, file string, line int) string {
	base := filepath.Base(file)
	parent := filepath.Base(filepath.Dir(file))
	if parent != "." && parent != "" && parent != string(filepath.Separator) {
		return parent + "/" + base + ":" + strconv.Itoa(line)
	}
	return base + ":" + strconv.Itoa(line)
}

// WithContext returns a logger with context information attached. A zerolog
// logger stored in the context wins; otherwise the request ID carried by the
// context, if any, is added as a request_id field.
func (l *ZeroLogger) WithContext(ctx any) Logger {
	c, ok := ctx.(context.Context)
	if !ok || c == nil {
		return l
	}

	if zl := zerolog.Ctx(c); zl != nil && zl.GetLevel() != zerolog.Disabled {
		return &ZeroLogger{zlog: zl, filter: l.filter}
	}
	if requestID, ok := apitrace.IDFromContext(c); ok {
		log := l.zlog.With().Str("request_id", requestID).Logger()
		return &ZeroLogger{zlog: &log, filter: l.filter}
	}
	return l
}

// WithFields returns a logger with additional fields attached to all log entries.
func (l *ZeroLogger) WithFields(fields map[string]any) Logger {
	if l.filter != nil {
		fields = l.filter.FilterFields(fields)
	}
	log := l.zlog.With().Fields(fields).Logger()
	return &ZeroLogger{zlog: &log, filter: l.filter}
}
