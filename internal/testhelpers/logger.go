package testhelpers

import (
	"io"
	"log/slog"

	"github.com/surfstrength/surfstrength/internal/logging"
)

// NewLogger creates a debug-level logger writing to the given sink, usually
// a testhelpers.Writer.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return slog.New(handler)
}
