package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type runIDKey struct{}

// WithRunID returns a context carrying a fresh run identifier.
// Loggers built with RunIDExtractor attach it to every record.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, runIDKey{}, id), id
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor is a ContextExtractor for the run identifier.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := RunIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("run_id", id), true
}
