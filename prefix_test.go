package paramlog_test

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	assertions "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaelmaar/paramlog"
)

func TestTimestampPrefix(t *testing.T) {
	ctx := context.Background()
	f, b := newFacade()
	f.SetPrefix(paramlog.TimestampPrefix("15:04"))

	require.NoError(t, f.Info(ctx, nil, "tick"))

	out := b.String()
	require.True(t, len(out) > len("INFO 15:04 "))
	_, err := time.Parse("15:04", out[len("INFO "):len("INFO 15:04")])
	assertions.NoError(t, err)
}

func TestTemplatePrefix(t *testing.T) {
	ctx := context.Background()
	f, b := newFacade()
	assert := assertions.New(t)

	p, err := f.TemplatePrefix("{{pid}}/{{count}}/{{ unknown }} ")
	require.NoError(t, err)
	f.SetPrefix(p)

	require.NoError(t, f.Warning(ctx, nil, "w"))
	assert.Equal("WARNING "+strconv.Itoa(os.Getpid())+"/1/{{ unknown }} param: w\n", b.String())

	p, err = f.TemplatePrefix("static ")
	require.NoError(t, err)
	assert.Equal("static ", p())

	_, err = f.TemplatePrefix("{{time")
	assert.Error(err)
}
