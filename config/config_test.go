package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datekit.yaml")
	err := os.WriteFile(path, []byte(`
logLevel: debug
output:
  name: terminal
  params:
    timeFormat: hms
    angleUnit: degrees
watch:
  debounce: 500ms
`), 0o600)
	require.NoError(t, err)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "terminal", conf.Output.Name)
	assert.Equal(t, "hms", conf.Param("timeFormat"))
	assert.Equal(t, "degrees", conf.Param("angleUnit"))
	assert.Equal(t, "", conf.Param("instantLayout"))
	require.NotNil(t, conf.Watch)
	assert.Equal(t, "500ms", conf.Watch.Debounce)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefaultMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	conf, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, conf.Output)
	assert.Equal(t, "", conf.Param("timeFormat"))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "yaml.Unmarshal")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
