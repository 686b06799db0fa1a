package logger

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type Logger interface {
	// Debug logs at LevelDebug.
	Debug(msg any)

	// Debugf logs at LevelDebug.
	Debugf(format string, args ...any)

	// Verbose logs at LevelVerbose.
	Verbose(msg any)

	// Verbosef logs at LevelVerbose.
	Verbosef(format string, args ...any)

	// Info logs at LevelInfo.
	Info(msg any)

	// Infof logs at LevelInfo.
	Infof(format string, args ...any)

	// Warn logs at LevelWarning.
	Warn(msg any)

	// Warnf logs at LevelWarning.
	Warnf(format string, args ...any)

	// Error logs at LevelError.
	Error(msg any)

	// Errorf logs at LevelError.
	Errorf(format string, args ...any)

	// Critical logs at LevelCritical.
	Critical(msg any)

	// Criticalf logs at LevelCritical.
	Criticalf(format string, args ...any)

	// Name returns the logger name used in message tags.
	Name() string

	// Level returns the configured threshold.
	Level() Level

	// SetLevel changes the configured threshold.
	SetLevel(level Level)

	// Enabled reports whether records at level pass the configured threshold.
	Enabled(level Level) bool

	// Handle writes r unconditionally. The caller has already decided that
	// r.Level passes its effective threshold; the record is rendered here.
	Handle(r *Record) error
}

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
type Level int

// Names for common log levels. Ranks leave room for custom levels.
const (
	LevelDebug    Level = 10
	LevelVerbose  Level = 15
	LevelInfo     Level = 20
	LevelWarning  Level = 30
	LevelError    Level = 40
	LevelCritical Level = 50
)

var (
	// ErrLevelRegistered is returned when a level name or rank is already in the rank table.
	ErrLevelRegistered = errors.New("level already registered")

	// ErrUnknownLevel is returned when a level name is not in the rank table.
	ErrUnknownLevel = errors.New("unknown level")
)

var ranks = struct {
	sync.RWMutex
	names  map[Level]string
	levels map[string]Level
}{
	names: map[Level]string{
		LevelDebug:    "DEBUG",
		LevelInfo:     "INFO",
		LevelWarning:  "WARNING",
		LevelError:    "ERROR",
		LevelCritical: "CRITICAL",
	},
	levels: map[string]Level{
		"DEBUG":    LevelDebug,
		"INFO":     LevelInfo,
		"WARNING":  LevelWarning,
		"ERROR":    LevelError,
		"CRITICAL": LevelCritical,
	},
}

func init() {
	if err := RegisterLevel("VERBOSE", LevelVerbose); err != nil {
		panic(err)
	}
}

// RegisterLevel adds a named rank to the shared rank table.
// Registering a name or a rank twice fails with ErrLevelRegistered.
func RegisterLevel(name string, rank Level) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return errors.New("level name cannot be empty")
	}

	ranks.Lock()
	defer ranks.Unlock()
	if _, ok := ranks.levels[name]; ok {
		return errors.Wrapf(ErrLevelRegistered, "name %s", name)
	}
	if existing, ok := ranks.names[rank]; ok {
		return errors.Wrapf(ErrLevelRegistered, "rank %d is %s", int(rank), existing)
	}
	ranks.names[rank] = name
	ranks.levels[name] = rank
	return nil
}

// ParseLevel looks a level up by name, ignoring case. WARN is accepted for WARNING.
func ParseLevel(name string) (Level, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "WARN" {
		key = "WARNING"
	}

	ranks.RLock()
	defer ranks.RUnlock()
	if l, ok := ranks.levels[key]; ok {
		return l, nil
	}
	return 0, errors.Wrapf(ErrUnknownLevel, "%q", name)
}

// Levels returns every registered level in ascending rank order.
func Levels() []Level {
	ranks.RLock()
	out := make([]Level, 0, len(ranks.names))
	for l := range ranks.names {
		out = append(out, l)
	}
	ranks.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether l is in the rank table.
func (l Level) Valid() bool {
	ranks.RLock()
	defer ranks.RUnlock()
	_, ok := ranks.names[l]
	return ok
}

func (l Level) String() string {
	ranks.RLock()
	defer ranks.RUnlock()
	if name, ok := ranks.names[l]; ok {
		return name
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}
