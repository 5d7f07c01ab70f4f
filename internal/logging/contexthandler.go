// Package logging wires slog handlers to request-scoped attributes carried
// in context, so middleware can tag every log line of a request with e.g.
// its trace id without threading loggers around.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKey string

const slogAttrs contextKey = "slogAttrs"

// ContextHandler decorates records with the attributes stored in the
// context via WithAttrs before delegating to the wrapped handler.
type ContextHandler struct {
	handler slog.Handler
}

func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogAttrs).([]slog.Attr); ok {
		for _, attr := range attrs {
			r.AddAttrs(attr)
		}
	}
	if err := h.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs stores attributes in the context for ContextHandler to pick up.
// Attributes accumulate across calls.
func WithAttrs(ctx context.Context, attr ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(slogAttrs).([]slog.Attr); ok {
		existing = append(existing, attr...)
		return context.WithValue(ctx, slogAttrs, existing)
	}
	return context.WithValue(ctx, slogAttrs, attr)
}
