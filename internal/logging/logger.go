// Package logging is the structured logger used by recarchiver. Command
// output goes to stdout; everything logged here goes to stderr.
package logging

import "context"

// Logger takes key/value pairs after the message:
//
//	logger.Info(ctx, "upload finished", "key", key, "bytes", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
