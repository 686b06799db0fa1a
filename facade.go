// Package paramlog tags log messages with the object that emits them, counts
// warnings, scopes level overrides to a context and can turn warnings into
// errors. Messages are written through a backend from the logger package.
package paramlog

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/shaelmaar/paramlog/logger"
)

// Facade emits owner-tagged messages through a backend logger.
//
// A Facade carries the configuration a framework shares between all of its
// objects: the backend logger, an optional per-message prefix, whether
// warnings are escalated to errors, and the count of warnings issued so far.
// The zero value is not usable; create one with New. All methods are safe for
// concurrent use.
type Facade struct {
	logger               atomic.Pointer[backend]
	prefix               atomic.Pointer[PrefixProvider]
	warningsAsExceptions atomic.Bool
	warningCount         atomic.Int64
}

type backend struct {
	l logger.Logger
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the backend logger. Without it the Facade follows logger.Default.
func WithLogger(l logger.Logger) Option {
	return func(f *Facade) {
		f.SetLogger(l)
	}
}

// WithPrefix sets the per-message prefix provider.
func WithPrefix(p PrefixProvider) Option {
	return func(f *Facade) {
		f.SetPrefix(p)
	}
}

// WithWarningsAsExceptions sets whether warnings are returned as *EscalatedWarning.
func WithWarningsAsExceptions(enabled bool) Option {
	return func(f *Facade) {
		f.SetWarningsAsExceptions(enabled)
	}
}

// New returns a Facade with a zero warning count.
func New(opts ...Option) *Facade {
	f := &Facade{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Logger returns the backend logger, falling back to logger.Default when
// none was set.
func (f *Facade) Logger() logger.Logger {
	if b := f.logger.Load(); b != nil {
		return b.l
	}
	return logger.Default()
}

// SetLogger replaces the backend logger. nil reverts to logger.Default.
func (f *Facade) SetLogger(l logger.Logger) {
	if l == nil {
		f.logger.Store(nil)
		return
	}
	f.logger.Store(&backend{l: l})
}

// Prefix returns the current prefix provider, or nil.
func (f *Facade) Prefix() PrefixProvider {
	if p := f.prefix.Load(); p != nil {
		return *p
	}
	return nil
}

// SetPrefix replaces the prefix provider. nil removes the prefix.
func (f *Facade) SetPrefix(p PrefixProvider) {
	if p == nil {
		f.prefix.Store(nil)
		return
	}
	f.prefix.Store(&p)
}

func (f *Facade) WarningsAsExceptions() bool {
	return f.warningsAsExceptions.Load()
}

func (f *Facade) SetWarningsAsExceptions(enabled bool) {
	f.warningsAsExceptions.Store(enabled)
}

// WarningCount returns the number of Warning calls made so far, filtered or not.
func (f *Facade) WarningCount() int64 {
	return f.warningCount.Load()
}

// Log emits a message at level on behalf of owner.
//
// The message is written as prefix, tag ("<logger>.<owner>: ") and format
// rendered with args. Rendering is left to the backend and only happens when
// level passes the effective threshold: the override carried by ctx if any,
// the backend level otherwise.
//
// Every WARNING call is counted, whether written or not. When warnings are
// escalated, a WARNING is written first (if it passes the threshold) and then
// returned as *EscalatedWarning. Backend errors are returned as is.
func (f *Facade) Log(ctx context.Context, level logger.Level, owner any, format string, args ...any) error {
	if !level.Valid() {
		return invalidSeverity(level)
	}

	l := f.Logger()
	warning := level == logger.LevelWarning
	if warning {
		f.warningCount.Add(1)
	}

	threshold, ok := LevelFromContext(ctx)
	if !ok {
		threshold = l.Level()
	}

	var r *logger.Record
	if level >= threshold {
		r = logger.NewRecord(level, format, args...)
		if p := f.Prefix(); p != nil {
			r.Prefix = p()
		}
		r.Tag = tag(l.Name(), owner)
		if err := l.Handle(r); err != nil {
			return err
		}
	}

	if warning && f.WarningsAsExceptions() {
		if r == nil {
			r = logger.NewRecord(level, format, args...)
			r.Tag = tag(l.Name(), owner)
		}
		return &EscalatedWarning{Message: r.Tag + r.Message()}
	}
	return nil
}

// Warning logs at LevelWarning. It is exactly Log(ctx, logger.LevelWarning, ...).
func (f *Facade) Warning(ctx context.Context, owner any, format string, args ...any) error {
	return f.Log(ctx, logger.LevelWarning, owner, format, args...)
}

// Debug logs at LevelDebug.
func (f *Facade) Debug(ctx context.Context, owner any, format string, args ...any) error {
	return f.Log(ctx, logger.LevelDebug, owner, format, args...)
}

// Verbose logs at LevelVerbose.
func (f *Facade) Verbose(ctx context.Context, owner any, format string, args ...any) error {
	return f.Log(ctx, logger.LevelVerbose, owner, format, args...)
}

// Info logs at LevelInfo.
func (f *Facade) Info(ctx context.Context, owner any, format string, args ...any) error {
	return f.Log(ctx, logger.LevelInfo, owner, format, args...)
}

// Error logs at LevelError.
func (f *Facade) Error(ctx context.Context, owner any, format string, args ...any) error {
	return f.Log(ctx, logger.LevelError, owner, format, args...)
}

// Critical logs at LevelCritical.
func (f *Facade) Critical(ctx context.Context, owner any, format string, args ...any) error {
	return f.Log(ctx, logger.LevelCritical, owner, format, args...)
}

func invalidSeverity(level logger.Level) error {
	return errors.Wrapf(ErrInvalidSeverity, "level %d", int(level))
}
