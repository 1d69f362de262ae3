package core

import "context"

// Logger is the slice of slog the engine needs; *slog.Logger satisfies it.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
