package paramlog

import (
	"context"
	"sync/atomic"

	"github.com/shaelmaar/paramlog/logger"
)

var defaultFacade atomic.Pointer[Facade]

func init() {
	defaultFacade.Store(New())
}

// Default returns the process-wide Facade.
func Default() *Facade {
	return defaultFacade.Load()
}

// SetDefault replaces the process-wide Facade. A nil Facade is ignored.
// The warning count of the replaced Facade is added to f, so the package-level
// WarningCount never goes back when the default changes.
func SetDefault(f *Facade) {
	if f == nil {
		return
	}
	prev := defaultFacade.Swap(f)
	if prev != nil && prev != f {
		f.warningCount.Add(prev.warningCount.Load())
	}
}

// GetLogger returns the backend logger of the default Facade.
func GetLogger() logger.Logger {
	return Default().Logger()
}

// WarningCount returns the warning count of the default Facade.
func WarningCount() int64 {
	return Default().WarningCount()
}

// Log calls Log on the default Facade.
func Log(ctx context.Context, level logger.Level, owner any, format string, args ...any) error {
	return Default().Log(ctx, level, owner, format, args...)
}

// Warning calls Warning on the default Facade.
func Warning(ctx context.Context, owner any, format string, args ...any) error {
	return Default().Warning(ctx, owner, format, args...)
}

// Debug calls Debug on the default Facade.
func Debug(ctx context.Context, owner any, format string, args ...any) error {
	return Default().Debug(ctx, owner, format, args...)
}

// Verbose calls Verbose on the default Facade.
func Verbose(ctx context.Context, owner any, format string, args ...any) error {
	return Default().Verbose(ctx, owner, format, args...)
}

// Info calls Info on the default Facade.
func Info(ctx context.Context, owner any, format string, args ...any) error {
	return Default().Info(ctx, owner, format, args...)
}

// Error calls Error on the default Facade.
func Error(ctx context.Context, owner any, format string, args ...any) error {
	return Default().Error(ctx, owner, format, args...)
}

// Critical calls Critical on the default Facade.
func Critical(ctx context.Context, owner any, format string, args ...any) error {
	return Default().Critical(ctx, owner, format, args...)
}
