// Package logging is the structured, context-aware logger handed to every
// zenkeeper component. SlogLogger is the only implementation.
package logging

import "context"

// Logger takes a message plus alternating key/value pairs:
//
//	log.Info(ctx, "diff applied", "transactions", 12, "checkpoint", ts)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)

	// Warn is for skipped input the caller can live with, such as a
	// deletion notice for an unknown object type.
	Warn(ctx context.Context, msg string, args ...any)

	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
