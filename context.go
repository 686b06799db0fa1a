package paramlog

import (
	"context"

	"github.com/shaelmaar/paramlog/logger"
)

type levelKey struct{}

// WithLevel returns a copy of ctx whose effective threshold is level.
// Overrides nest: the innermost one wins, and ctx itself is unchanged, so
// dropping the returned context restores the previous override exactly.
func WithLevel(ctx context.Context, level logger.Level) context.Context {
	return context.WithValue(ctx, levelKey{}, level)
}

// LevelFromContext returns the innermost override carried by ctx.
func LevelFromContext(ctx context.Context) (logger.Level, bool) {
	if ctx == nil {
		return 0, false
	}
	level, ok := ctx.Value(levelKey{}).(logger.Level)
	return level, ok
}

// LoggingLevel runs fn with level as the effective threshold. The override
// applies only to the context handed to fn; it ends when fn returns, returns
// an error or panics.
//
//	err := paramlog.LoggingLevel(ctx, logger.LevelCritical, func(ctx context.Context) error {
//		return sq.Resize(ctx, 2)
//	})
func LoggingLevel(ctx context.Context, level logger.Level, fn func(ctx context.Context) error) error {
	if !level.Valid() {
		return invalidSeverity(level)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(WithLevel(ctx, level))
}
