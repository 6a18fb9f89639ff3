// Package logging provides the shared structured logger for eftm.
//
// It wraps the standard library's [log/slog] package behind a single base
// handler so every component writes to the same destination at the same
// level. The level is read from EFTM_LOG_LEVEL (debug, info, warn, error) and
// defaults to INFO.
//
// Usage:
//
//	var log = logging.New("sysmem")
//	log.Debug("process lookup failed", "pid", pid, "error", err)
//
// Output goes to stderr until Configure is called. The terminal UI owns
// stdout and stderr while it runs, so the TUI command points the logger at a
// file before starting the program. Loggers created earlier, including
// package-level ones, follow the swap.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

const envLogLevel = "EFTM_LOG_LEVEL"

// current holds the active root handler shared by every logger from New.
var current atomic.Pointer[slog.Handler]

func init() {
	setRoot(newHandler(os.Stderr, os.Getenv(envLogLevel)))
}

// New returns a logger scoped to the given component name.
//
// The component is attached as a "component" attribute on every entry. An
// empty component returns an untagged logger.
func New(component string) *slog.Logger {
	logger := slog.New(&switchHandler{})
	if component == "" {
		return logger
	}
	return logger.With("component", component)
}

// Configure replaces the root handler. An empty level falls back to
// EFTM_LOG_LEVEL, then INFO.
func Configure(w io.Writer, level string) {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv(envLogLevel)
	}
	setRoot(newHandler(w, level))
}

// Discard silences all logging. Tests use it to keep output clean.
func Discard() {
	Configure(io.Discard, "error")
}

func setRoot(h slog.Handler) {
	current.Store(&h)
}

func newHandler(w io.Writer, level string) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
}

// switchHandler resolves the root handler on every call and replays the
// attrs and groups added through With/WithGroup on top of it.
type switchHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (h *switchHandler) resolve() slog.Handler {
	inner := *current.Load()
	for _, op := range h.ops {
		inner = op(inner)
	}
	return inner
}

func (h *switchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return (*current.Load()).Enabled(ctx, level)
}

func (h *switchHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.resolve().Handle(ctx, r)
}

func (h *switchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(inner slog.Handler) slog.Handler { return inner.WithAttrs(attrs) })
}

func (h *switchHandler) WithGroup(name string) slog.Handler {
	return h.with(func(inner slog.Handler) slog.Handler { return inner.WithGroup(name) })
}

func (h *switchHandler) with(op func(slog.Handler) slog.Handler) slog.Handler {
	ops := make([]func(slog.Handler) slog.Handler, 0, len(h.ops)+1)
	ops = append(ops, h.ops...)
	ops = append(ops, op)
	return &switchHandler{ops: ops}
}

// ParseLevel converts a human-readable level to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
