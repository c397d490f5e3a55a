package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vaughan0/go-ini"
)

// Config holds the runner settings. They come from an INI file with an
// [aoc] section, overridden by AOC_* environment variables.
//
//	[aoc]
//	session = 53616c7465645f5f...
//	input_dir = ~/src/aoc-inputs
//	log_level = debug
type Config struct {
	// Session is the adventofcode.com session cookie used to fetch inputs.
	Session string
	// InputDir is where inputs are cached, as <InputDir>/<year>/<day>.input.
	InputDir string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

// DefaultConfigPath returns the config file consulted when none is given,
// or "" if there is no user config directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aoc", "config.ini")
}

// LoadConfig reads the config file at path. An empty path means
// DefaultConfigPath, which may be missing; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		InputDir: ".",
		LogLevel: "info",
	}
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" {
		f, err := ini.LoadFile(path)
		switch {
		case err == nil:
			sec := f.Section("aoc")
			setIf(&cfg.Session, sec["session"])
			setIf(&cfg.InputDir, expandHome(sec["input_dir"]))
			setIf(&cfg.LogLevel, sec["log_level"])
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}
	setIf(&cfg.Session, os.Getenv("AOC_SESSION"))
	setIf(&cfg.InputDir, expandHome(os.Getenv("AOC_INPUT_DIR")))
	setIf(&cfg.LogLevel, os.Getenv("AOC_LOG_LEVEL"))
	return cfg, nil
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func expandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}

// session returns the session cookie, falling back to ~/keys/aoc.session.
func (c Config) session() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(home, "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no session configured: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (c Config) level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger returns a text logger on w. debug forces the debug level.
func newLogger(w io.Writer, cfg Config, debug bool) *slog.Logger {
	level := cfg.level()
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
