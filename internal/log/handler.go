package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Handler is a slog.Handler for compact formatted output
type Handler struct {
	level  slog.Level
	mu     sync.Mutex
	attrs  []slog.Attr
	output io.Writer
}

// NewHandler creates a new handler for formatted output
func NewHandler(output io.Writer, level slog.Level) *Handler {
	return &Handler{
		level:  level,
		output: output,
	}
}

// Enabled returns whether the handler handles records at the given level
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes the Record and outputs formatted log
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Format level prefix
	var levelStr string
	switch {
	case r.Level >= slog.LevelError:
		levelStr = "[ERROR] "
	case r.Level >= slog.LevelWarn:
		levelStr = "[WARN] "
	case r.Level >= slog.LevelInfo:
		levelStr = "" // No prefix for INFO
	default:
		levelStr = "[DEBUG] "
	}

	// Build the message with attributes inline
	formattedMsg := r.Message
	for _, a := range h.attrs {
		formattedMsg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.TimeKey {
			return true
		}
		formattedMsg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	// Write to output
	fmt.Fprintf(h.output, "%s%s\n", levelStr, formattedMsg)
	return nil
}

// WithAttrs returns a new Handler whose attributes include both the
// receiver's attributes and the arguments
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		level:  h.level,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
		output: h.output,
	}
}

// WithGroup returns a new Handler with the given group name
func (h *Handler) WithGroup(name string) slog.Handler {
	// For simplicity, we don't support WithGroup
	return h
}
