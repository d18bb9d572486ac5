// Package logging configures the process-wide structured logger.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// New builds a logger writing to stderr. level accepts debug, info, warn or
// error; anything else means info. Text format is the default because the
// tool runs interactively; set format to "json" for machine collection.
// Consecutive records with the same message are dropped so retry loops do
// not flood the output.
func New(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(newDedupHandler(handler))
}

// Logf adapts a logger to the printf-style hooks the dial and time sync
// helpers accept.
func Logf(logger *slog.Logger) func(string, ...any) {
	return func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// dedupHandler drops a record when its message matches the previous one.
// The last-message cell lives on the handler, so independent loggers do not
// suppress each other.
type dedupHandler struct {
	next slog.Handler

	mu   sync.Mutex
	last string
	seen bool
}

func newDedupHandler(next slog.Handler) *dedupHandler {
	return &dedupHandler{next: next}
}

func (h *dedupHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *dedupHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	if h.seen && h.last == record.Message {
		h.mu.Unlock()
		return nil
	}
	h.last = record.Message
	h.seen = true
	h.mu.Unlock()
	return h.next.Handle(ctx, record)
}

func (h *dedupHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dedupHandler{next: h.next.WithAttrs(attrs)}
}

func (h *dedupHandler) WithGroup(name string) slog.Handler {
	return &dedupHandler{next: h.next.WithGroup(name)}
}
