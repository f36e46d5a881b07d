// Package netlog wraps zerolog with the fields this engine attaches to
// every log line: snapshot_id, component, operation. Core packages
// (topology, spf, impact, ...) and the kvstore/progress adapters never
// import this package — only the CLI does, per SPEC_FULL.md's ambient
// stack: the core stays a library of pure functions.
//
// Grounded on jhkimqd-chaos-utils/pkg/reporting/logger.go's zerolog wrapper.
package netlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with helpers to attach this engine's
// standard fields.
type Logger struct {
	zl zerolog.Logger
}

// Option configures a Logger at construction time.
type Option func(*options)

type options struct {
	writer io.Writer
	level  zerolog.Level
	pretty bool
}

// WithWriter sets the output writer. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithLevel sets the minimum level emitted. Defaults to zerolog.InfoLevel.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// WithPretty switches to zerolog's human-readable console writer instead of
// JSON. Intended for interactive CLI use, never for production log capture.
func WithPretty(pretty bool) Option {
	return func(o *options) { o.pretty = pretty }
}

// New constructs a Logger with the given options.
func New(opts ...Option) Logger {
	o := options{writer: os.Stderr, level: zerolog.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}
	w := o.writer
	if o.pretty {
		w = zerolog.ConsoleWriter{Out: o.writer}
	}
	zl := zerolog.New(w).Level(o.level).With().Timestamp().Logger()
	return Logger{zl: zl}
}

// ForOperation returns a child logger tagged with component and operation,
// e.g. netlog.New().ForOperation("impact", "analyze_impact").
func (l Logger) ForOperation(component, operation string) Logger {
	return Logger{zl: l.zl.With().Str("component", component).Str("operation", operation).Logger()}
}

// WithSnapshot returns a child logger tagged with a snapshot id.
func (l Logger) WithSnapshot(snapshotID string) Logger {
	return Logger{zl: l.zl.With().Str("snapshot_id", snapshotID).Logger()}
}

func (l Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Nop returns a Logger that discards everything, for tests that don't want
// log noise but need a Logger value to pass around.
func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}
