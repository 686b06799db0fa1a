package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Record is a single emission handed to Logger.Handle.
//
// Format and Args are kept apart until Message is first called, so argument
// stringification only happens for records that are actually written.
type Record struct {
	ID     xid.ID
	Time   time.Time
	Level  Level
	Prefix string
	Tag    string
	Format string
	Args   []any

	once     sync.Once
	rendered string
}

// NewRecord returns a record stamped with a fresh ID and the current time.
func NewRecord(level Level, format string, args ...any) *Record {
	return &Record{
		ID:     xid.New(),
		Time:   time.Now(),
		Level:  level,
		Format: format,
		Args:   args,
	}
}

// Message renders Format with Args. Rendering runs at most once per record.
func (r *Record) Message() string {
	r.once.Do(func() {
		if len(r.Args) == 0 {
			r.rendered = r.Format
			return
		}
		r.rendered = fmt.Sprintf(r.Format, r.Args...)
	})
	return r.rendered
}

// String returns the full line: prefix, tag and message.
func (r *Record) String() string {
	return r.Prefix + r.Tag + r.Message()
}
