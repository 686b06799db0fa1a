package logger

import (
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the logger.Logger interface on top of logrus.
//
// Filtering is done against the LogrusLogger threshold; the wrapped logrus
// logger is opened up to TraceLevel so it never drops a record that passed.
// VERBOSE and CRITICAL have no logrus equivalent and are written at Debug and
// Error with the original name in the "severity" field.
type LogrusLogger struct {
	logger *logrus.Logger
	level  atomic.Int64
	name   string
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogrusLogger returns a new LogrusLogger. An empty name means DefaultName.
func NewLogrusLogger(name string, logger *logrus.Logger, level Level) *LogrusLogger {
	if name == "" {
		name = DefaultName
	}
	logger.SetLevel(logrus.TraceLevel)

	l := &LogrusLogger{
		logger: logger,
		name:   name,
	}
	l.level.Store(int64(level))
	return l
}

// Logrus returns the wrapped logrus logger.
func (l *LogrusLogger) Logrus() *logrus.Logger {
	return l.logger
}

func (l *LogrusLogger) Debug(msg any)                        { l.print(LevelDebug, msg) }
func (l *LogrusLogger) Debugf(format string, args ...any)    { l.printf(LevelDebug, format, args...) }
func (l *LogrusLogger) Verbose(msg any)                      { l.print(LevelVerbose, msg) }
func (l *LogrusLogger) Verbosef(format string, args ...any)  { l.printf(LevelVerbose, format, args...) }
func (l *LogrusLogger) Info(msg any)                         { l.print(LevelInfo, msg) }
func (l *LogrusLogger) Infof(format string, args ...any)     { l.printf(LevelInfo, format, args...) }
func (l *LogrusLogger) Warn(msg any)                         { l.print(LevelWarning, msg) }
func (l *LogrusLogger) Warnf(format string, args ...any)     { l.printf(LevelWarning, format, args...) }
func (l *LogrusLogger) Error(msg any)                        { l.print(LevelError, msg) }
func (l *LogrusLogger) Errorf(format string, args ...any)    { l.printf(LevelError, format, args...) }
func (l *LogrusLogger) Critical(msg any)                     { l.print(LevelCritical, msg) }
func (l *LogrusLogger) Criticalf(format string, args ...any) { l.printf(LevelCritical, format, args...) }

func (l *LogrusLogger) Name() string {
	return l.name
}

func (l *LogrusLogger) Level() Level {
	return Level(l.level.Load())
}

func (l *LogrusLogger) SetLevel(level Level) {
	l.level.Store(int64(level))
}

func (l *LogrusLogger) Enabled(level Level) bool {
	return level >= l.Level()
}

// Handle writes the record with its ID, severity and tag as fields. The
// message keeps the full line so text output reads like SimpleLogger's.
func (l *LogrusLogger) Handle(r *Record) error {
	entry := l.logger.WithFields(logrus.Fields{
		"id":       r.ID.String(),
		"severity": r.Level.String(),
	})
	if tag := strings.TrimSuffix(r.Tag, ": "); tag != "" {
		entry = entry.WithField("tag", tag)
	}
	if !r.Time.IsZero() {
		entry = entry.WithTime(r.Time)
	}
	entry.Log(logrusLevel(r.Level), r.String())
	return nil
}

// logrusLevel maps a rank onto the closest logrus level at or below it.
func logrusLevel(level Level) logrus.Level {
	switch {
	case level >= LevelError:
		return logrus.ErrorLevel
	case level >= LevelWarning:
		return logrus.WarnLevel
	case level >= LevelInfo:
		return logrus.InfoLevel
	case level >= LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func (l *LogrusLogger) print(level Level, msg any) {
	if l.Enabled(level) {
		_ = l.Handle(NewRecord(level, "%v", msg))
	}
}

func (l *LogrusLogger) printf(level Level, format string, args ...any) {
	if l.Enabled(level) {
		_ = l.Handle(NewRecord(level, format, args...))
	}
}
