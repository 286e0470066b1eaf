// Package logging configures the zerolog logger shared by the server and CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level to output (debug, info, warn, error).
	Level string `yaml:"level" koanf:"level"`

	// Format is the output format: json, console, or auto.
	Format string `yaml:"format" koanf:"format"`

	// Output is where to write logs: stderr, stdout, discard, or a file path.
	Output string `yaml:"output" koanf:"output"`
}

// DefaultConfig returns info-level logging to stderr with format auto-detection.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "auto", Output: "stderr"}
}

// Writer resolves cfg.Output. File paths are opened for appending and
// stay open for the life of the process.
func Writer(cfg Config) (io.Writer, error) {
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard", "none":
		return io.Discard, nil
	}
	f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log output: %w", err)
	}
	return f, nil
}

// Open creates a logger writing to cfg.Output.
func Open(cfg Config) (zerolog.Logger, error) {
	w, err := Writer(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}
	return New(cfg, w), nil
}

// ValidFormat reports whether f is a recognized format.
func ValidFormat(f string) bool {
	switch strings.ToLower(f) {
	case "", "auto", "json", "console":
		return true
	}
	return false
}

// New creates a logger writing to out.
func New(cfg Config, out io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)

	var w io.Writer = out
	if useConsole(cfg.Format, out) {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func useConsole(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case "console":
		return true
	case "json":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warn", "warning":
		return zerolog.WarnLevel
	case "off", "none", "disabled":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && level != "" {
		return l
	}
	return zerolog.InfoLevel
}
