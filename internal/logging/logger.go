// Package logging decouples the rest of the codebase from a concrete logging
// backend. Components take the Logger interface; the binary decides once, at
// startup, which implementation backs it.
package logging

import "context"

// Logger is the structured logging surface the project components depend on.
// Variadic args are alternating key-value pairs:
//
//	log.Info(ctx, "starting server", "addr", addr)
//
// Only the three levels the server actually emits are part of the contract.
type Logger interface {
	// Info records normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records degraded but recoverable conditions, such as a mail
	// gateway falling back to the mock channel.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a derived logger carrying the given key-value pairs on
	// every subsequent record.
	With(args ...any) Logger
}
