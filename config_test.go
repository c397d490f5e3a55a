package aoc

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AOC_SESSION", "")
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: ".", LogLevel: "info"}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfig(t, `
[aoc]
session = abc123
input_dir = /tmp/inputs
log_level = debug

[other]
session = ignored
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Session: "abc123", InputDir: "/tmp/inputs", LogLevel: "debug"}, cfg)
	assert.Equal(t, slog.LevelDebug, cfg.level())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfig(t, "[aoc]\nsession = fromfile\ninput_dir = ~/aoc\n")
	t.Setenv("AOC_SESSION", "fromenv")
	t.Setenv("AOC_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Session)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), "aoc"), cfg.InputDir)
	assert.Equal(t, slog.LevelWarn, cfg.level())
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearConfigEnv(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	assert.ErrorContains(t, err, "nope.ini")
}

func TestSession(t *testing.T) {
	clearConfigEnv(t)
	_, err := Config{}.session()
	assert.Error(t, err)

	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, "keys"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(home, "keys", "aoc.session"), []byte("s3cr3t\n"), 0600))
	got, err := Config{}.session()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got)

	got, err = Config{Session: "set"}.session()
	require.NoError(t, err)
	assert.Equal(t, "set", got)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, Config{LogLevel: "error"}, false)
	l.Info("hidden")
	l.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l = newLogger(&buf, Config{LogLevel: "error"}, true)
	l.Debug("forced")
	assert.Contains(t, buf.String(), "forced")
}
