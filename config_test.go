package paramlog_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	assertions "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaelmaar/paramlog"
	"github.com/shaelmaar/paramlog/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := paramlog.DefaultConfig()
	require.NoError(t, cfg.Validate())

	var b bytes.Buffer
	f, err := cfg.Build(&b)
	require.NoError(t, err)

	assert := assertions.New(t)
	assert.Equal(logger.DefaultName, f.Logger().Name())
	assert.Equal(logger.LevelInfo, f.Logger().Level())
	assert.False(f.WarningsAsExceptions())
	assert.Nil(f.Prefix())
}

func TestParseConfig(t *testing.T) {
	cfg, err := paramlog.ParseConfig([]byte(`
name = "shapes"
level = "verbose"
prefix = "[{{count}}] "
warnings_as_exceptions = true
`))
	require.NoError(t, err)

	assert := assertions.New(t)
	assert.Equal("shapes", cfg.Name)
	assert.Equal("verbose", cfg.Level)
	assert.Equal(paramlog.BackendSimple, cfg.Backend)

	var b bytes.Buffer
	f, err := cfg.Build(&b)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, f.Debug(ctx, nil, "hidden"))
	require.NoError(t, f.Verbose(ctx, nil, "shown"))
	err = f.Warning(ctx, nil, "escalated")
	var ew *paramlog.EscalatedWarning
	assert.True(errors.As(err, &ew))

	assert.Equal("VERBOSE [0] shapes: shown\nWARNING [1] shapes: escalated\n", b.String())
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown level", content: `level = "LOUD"`},
		{name: "unknown backend", content: `backend = "syslog"`},
		{name: "unknown format", content: `format = "xml"`},
		{name: "json needs logrus", content: `format = "json"`},
		{name: "json with simple backend", content: "backend = \"simple\"\nformat = \"json\""},
		{name: "empty name", content: `name = ""`},
		{name: "unknown key", content: `colour = true`},
		{name: "syntax", content: `level = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paramlog.ParseConfig([]byte(tt.content))
			assertions.True(t, errors.Is(err, paramlog.ErrInvalidConfig), "%v", err)
		})
	}
}

func TestBuildRejectsBadPrefix(t *testing.T) {
	cfg := paramlog.DefaultConfig()
	cfg.Prefix = "{{time"

	_, err := cfg.Build(&bytes.Buffer{})
	assertions.True(t, errors.Is(err, paramlog.ErrInvalidConfig))
}

func TestLoadConfigLogrus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paramlog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "shapes"
level = "WARNING"
backend = "logrus"
format = "json"
`), 0o600))

	cfg, err := paramlog.LoadConfig(path)
	require.NoError(t, err)

	var b bytes.Buffer
	f, err := cfg.Build(&b)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, f.Info(ctx, nil, "hidden"))
	assertions.Empty(t, b.String())

	require.NoError(t, f.Warning(ctx, newSquare(), "side %d", 3))
	out := b.String()
	assertions.Contains(t, out, `"level":"warning"`)
	assertions.Regexp(t, regexp.MustCompile(`"msg":"shapes\.Square\d{5}: side 3"`), out)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := paramlog.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assertions.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := paramlog.DefaultConfig()
	cfg.Prefix = "{{pid}} "

	out, err := cfg.Marshal()
	require.NoError(t, err)
	assertions.True(t, strings.Contains(string(out), `prefix = '{{pid}} '`) || strings.Contains(string(out), `prefix = "{{pid}} "`))

	back, err := paramlog.ParseConfig(out)
	require.NoError(t, err)
	assertions.Equal(t, cfg, *back)
}
