// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the eegica command.
//
// Library packages (matrix, ica, recording, report) never log; they return
// errors. The command logs stage boundaries through the *slog.Logger built
// here:
//
//	log := logging.New(logging.Config{Level: logging.LevelDebug, Service: "eegica"})
//	log.Info("loaded", logging.Shape("eeg", 4, 1000))
//
// Output goes to stderr as text unless Config says otherwise, keeping stdout
// free for command results.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug traces every pipeline stage with its matrix shapes.
	LevelDebug Level = iota - 1

	// LevelInfo reports loaded inputs and written outputs. It is the zero value.
	LevelInfo

	// LevelWarn flags suspicious but usable data, such as a large round-trip error.
	LevelWarn

	// LevelError reports a failed command.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel maps Level onto slog; unknown levels fall back to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures New. The zero value logs Info and above as text to stderr.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// JSON switches from slog's text format to JSON lines.
	JSON bool

	// Service, when set, is attached to every record as "service".
	Service string

	// Output replaces stderr.
	Output io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}
	log := slog.New(h)
	if cfg.Service != "" {
		log = log.With("service", cfg.Service)
	}

	return log
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Shape renders a matrix shape as a single "rows×cols" attribute.
func Shape(key string, rows, cols int) slog.Attr {
	return slog.String(key, fmt.Sprintf("%d×%d", rows, cols))
}
