package logger

import (
	"log"
	"sync/atomic"

	"github.com/fatih/color"
)

// DefaultName is the logger name used when none is given.
const DefaultName = "param"

// SimpleLogger label colors, used when coloring is enabled.
var labelColors = map[Level]*color.Color{
	LevelDebug:    color.New(color.FgWhite),
	LevelVerbose:  color.New(color.FgCyan),
	LevelInfo:     color.New(color.FgGreen),
	LevelWarning:  color.New(color.FgYellow),
	LevelError:    color.New(color.FgRed),
	LevelCritical: color.New(color.FgRed, color.Bold),
}

// SimpleLogger implements the logger.Logger interface on top of a standard library logger.
type SimpleLogger struct {
	logger *log.Logger
	level  atomic.Int64
	name   string
	color  bool
}

var _ Logger = (*SimpleLogger)(nil)

// Option configures a SimpleLogger.
type Option func(*SimpleLogger)

// WithName sets the name placed in message tags.
func WithName(name string) Option {
	return func(l *SimpleLogger) {
		if name != "" {
			l.name = name
		}
	}
}

// WithColor turns colored level labels on or off.
func WithColor(enabled bool) Option {
	return func(l *SimpleLogger) {
		l.color = enabled
	}
}

// NewSimpleLogger returns a new SimpleLogger.
func NewSimpleLogger(logger *log.Logger, level Level, opts ...Option) *SimpleLogger {
	l := &SimpleLogger{
		logger: logger,
		name:   DefaultName,
	}
	l.level.Store(int64(level))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug logs at LevelDebug.
// Arguments are handled in the manner of fmt.Print.
func (l *SimpleLogger) Debug(msg any) {
	l.print(LevelDebug, msg)
}

// Debugf logs at LevelDebug.
// Arguments are handled in the manner of fmt.Printf.
func (l *SimpleLogger) Debugf(format string, args ...any) {
	l.printf(LevelDebug, format, args...)
}

// Verbose logs at LevelVerbose.
func (l *SimpleLogger) Verbose(msg any) {
	l.print(LevelVerbose, msg)
}

// Verbosef logs at LevelVerbose.
func (l *SimpleLogger) Verbosef(format string, args ...any) {
	l.printf(LevelVerbose, format, args...)
}

// Info logs at LevelInfo.
func (l *SimpleLogger) Info(msg any) {
	l.print(LevelInfo, msg)
}

// Infof logs at LevelInfo.
func (l *SimpleLogger) Infof(format string, args ...any) {
	l.printf(LevelInfo, format, args...)
}

// Warn logs at LevelWarning.
func (l *SimpleLogger) Warn(msg any) {
	l.print(LevelWarning, msg)
}

// Warnf logs at LevelWarning.
func (l *SimpleLogger) Warnf(format string, args ...any) {
	l.printf(LevelWarning, format, args...)
}

// Error logs at LevelError.
func (l *SimpleLogger) Error(msg any) {
	l.print(LevelError, msg)
}

// Errorf logs at LevelError.
func (l *SimpleLogger) Errorf(format string, args ...any) {
	l.printf(LevelError, format, args...)
}

// Critical logs at LevelCritical.
func (l *SimpleLogger) Critical(msg any) {
	l.print(LevelCritical, msg)
}

// Criticalf logs at LevelCritical.
func (l *SimpleLogger) Criticalf(format string, args ...any) {
	l.printf(LevelCritical, format, args...)
}

func (l *SimpleLogger) Name() string {
	return l.name
}

func (l *SimpleLogger) Level() Level {
	return Level(l.level.Load())
}

func (l *SimpleLogger) SetLevel(level Level) {
	l.level.Store(int64(level))
}

// Enabled reports whether the logger handles records at the given level.
func (l *SimpleLogger) Enabled(level Level) bool {
	return level >= l.Level()
}

// Handle writes the record as "LEVEL prefix tag message".
func (l *SimpleLogger) Handle(r *Record) error {
	return l.logger.Output(2, l.label(r.Level)+r.String())
}

func (l *SimpleLogger) label(level Level) string {
	label := level.String() + " "
	if !l.color {
		return label
	}
	if c, ok := labelColors[level]; ok {
		return c.Sprint(label)
	}
	return label
}

func (l *SimpleLogger) print(level Level, msg any) {
	if l.Enabled(level) {
		_ = l.Handle(NewRecord(level, "%v", msg))
	}
}

func (l *SimpleLogger) printf(level Level, format string, args ...any) {
	if l.Enabled(level) {
		_ = l.Handle(NewRecord(level, format, args...))
	}
}
