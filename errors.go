package paramlog

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidSeverity is returned when a level is not in the rank table.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// EscalatedWarning is returned in place of a silent warning when warnings
// are configured to be treated as errors. Message is the rendered text,
// including the owner tag but not the per-message prefix.
type EscalatedWarning struct {
	Message string
}

func (e *EscalatedWarning) Error() string {
	return "Warning: " + e.Message
}
