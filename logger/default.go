package logger

import (
	"log"
	"os"
	"sync/atomic"
)

type holder struct {
	l Logger
}

var defaultLogger atomic.Pointer[holder]

// Default returns the process-wide logger. On first access, when SetDefault
// has not been called, it creates a SimpleLogger named DefaultName that writes
// to stderr at LevelInfo.
func Default() Logger {
	if h := defaultLogger.Load(); h != nil {
		return h.l
	}
	l := NewSimpleLogger(log.New(os.Stderr, "", 0), LevelInfo)
	defaultLogger.CompareAndSwap(nil, &holder{l: l})
	return defaultLogger.Load().l
}

// ResetDefault drops the process-wide logger; the next Default call creates a
// fresh one. Intended for tests.
func ResetDefault() {
	defaultLogger.Store(nil)
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(&holder{l: l})
}

// Debug logs at LevelDebug on the default logger.
func Debug(msg any) { Default().Debug(msg) }

// Debugf logs at LevelDebug on the default logger.
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }

// Verbose logs at LevelVerbose on the default logger.
func Verbose(msg any) { Default().Verbose(msg) }

// Verbosef logs at LevelVerbose on the default logger.
func Verbosef(format string, args ...any) { Default().Verbosef(format, args...) }

// Info logs at LevelInfo on the default logger.
func Info(msg any) { Default().Info(msg) }

// Infof logs at LevelInfo on the default logger.
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Warn logs at LevelWarning on the default logger.
func Warn(msg any) { Default().Warn(msg) }

// Warnf logs at LevelWarning on the default logger.
func Warnf(format string, args ...any) { Default().Warnf(format, args...) }

// Error logs at LevelError on the default logger.
func Error(msg any) { Default().Error(msg) }

// Errorf logs at LevelError on the default logger.
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Critical logs at LevelCritical on the default logger.
func Critical(msg any) { Default().Critical(msg) }

// Criticalf logs at LevelCritical on the default logger.
func Criticalf(format string, args ...any) { Default().Criticalf(format, args...) }
