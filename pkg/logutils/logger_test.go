package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_appends_to_file(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "barber.log")

	for _, msg := range []string{"first", "second"} {
		l, closer, err := New("info", file)
		require.NoError(t, err)
		l.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), `"message":"first"`)
	assert.Contains(t, string(data), `"message":"second"`)
}

func TestNew_level_filters(t *testing.T) {
	file := filepath.Join(t.TempDir(), "barber.log")
	l, closer, err := New("warn", file)
	require.NoError(t, err)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_invalid_level(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotPanics(t, closer)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := Console("debug", &buf)
	require.NoError(t, err)

	l.Debug().Str("path", "/users").Msg("request")

	assert.Contains(t, buf.String(), "request")
	assert.Contains(t, buf.String(), "path=")
	assert.Contains(t, buf.String(), "/users")
}
