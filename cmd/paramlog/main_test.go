package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	assertions "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaelmaar/paramlog"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEmitInfo(t *testing.T) {
	stdout, stderr, err := execute("emit", "info", "side=%s", "5", "--owner", "Square00001")
	require.NoError(t, err)
	assertions.Empty(t, stdout)
	assertions.Equal(t, "INFO param.Square00001: side=5\n", stderr)
}

func TestEmitFiltered(t *testing.T) {
	_, stderr, err := execute("emit", "verbose", "hidden")
	require.NoError(t, err)
	assertions.Empty(t, stderr)

	_, stderr, err = execute("emit", "verbose", "shown", "--level", "VERBOSE")
	require.NoError(t, err)
	assertions.Equal(t, "VERBOSE param: shown\n", stderr)
}

func TestEmitScope(t *testing.T) {
	stdout, stderr, err := execute("emit", "warning", "quiet", "--scope", "critical", "--count")
	require.NoError(t, err)
	assertions.Empty(t, stderr)
	assertions.Equal(t, "1\n", stdout)
}

func TestEmitWarningsAsExceptions(t *testing.T) {
	_, stderr, err := execute("emit", "warning", "bad", "-W")

	var ew *paramlog.EscalatedWarning
	require.True(t, errors.As(err, &ew))
	assertions.Equal(t, "param: bad", ew.Message)
	assertions.Contains(t, stderr, "WARNING param: bad\n")
}

func TestEmitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paramlog.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"shapes\"\nlevel = \"ERROR\"\n"), 0o600))

	_, stderr, err := execute("emit", "warning", "hidden", "-c", path)
	require.NoError(t, err)
	assertions.Empty(t, stderr)

	_, stderr, err = execute("emit", "error", "shown", "-c", path, "--prefix", "> ")
	require.NoError(t, err)
	assertions.Equal(t, "ERROR > shapes: shown\n", stderr)
}

func TestEmitRejectsBadInput(t *testing.T) {
	_, _, err := execute("emit", "loud", "x")
	assertions.Error(t, err)

	_, _, err = execute("emit", "info", "x", "--level", "loud")
	assertions.Error(t, err)

	_, _, err = execute("emit", "info")
	assertions.Error(t, err)
}

func TestLevels(t *testing.T) {
	stdout, _, err := execute("levels")
	require.NoError(t, err)
	assertions.Contains(t, stdout, "DEBUG    10\nVERBOSE  15\nINFO     20\n")
	assertions.Contains(t, stdout, "CRITICAL 50\n")
}
