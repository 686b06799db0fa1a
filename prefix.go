package paramlog

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

// PrefixProvider returns the text placed in front of a message. It is called
// once per written message and never for filtered ones.
type PrefixProvider func() string

// Prefix template tags.
const (
	TagTime  = "time"
	TagPID   = "pid"
	TagCount = "count"
)

// DefaultTimeLayout is the layout used for {{time}} and TimestampPrefix.
const DefaultTimeLayout = "2006-01-02 15:04:05.000"

// TimestampPrefix returns a provider producing the current time followed by a space.
func TimestampPrefix(layout string) PrefixProvider {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return func() string {
		return time.Now().Format(layout) + " "
	}
}

// TemplatePrefix returns a provider rendering tmpl for every message.
//
// Supported tags are {{time}}, {{pid}} and {{count}}, the latter being the
// warning count of f at the time of the message. Unknown tags are left as is.
func (f *Facade) TemplatePrefix(tmpl string) (PrefixProvider, error) {
	if !strings.Contains(tmpl, "{{") {
		return func() string { return tmpl }, nil
	}

	t, err := fasttemplate.NewTemplate(tmpl, "{{", "}}")
	if err != nil {
		return nil, errors.Wrapf(err, "parse prefix template %q", tmpl)
	}
	pid := strconv.Itoa(os.Getpid())

	return func() string {
		return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
			switch strings.TrimSpace(tag) {
			case TagTime:
				return io.WriteString(w, time.Now().Format(DefaultTimeLayout))
			case TagPID:
				return io.WriteString(w, pid)
			case TagCount:
				return io.WriteString(w, strconv.FormatInt(f.WarningCount(), 10))
			default:
				return io.WriteString(w, "{{"+tag+"}}")
			}
		})
	}, nil
}
