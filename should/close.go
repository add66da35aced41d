// Package should provides cleanup helpers for operations that should
// succeed but may fail in practice. Instead of returning errors, these
// functions log failures, making them suitable for defer statements.
package should

import (
	"io"
	"log/slog"
)

// Close attempts to close the given io.Closer and logs an error if it
// fails. Useful in defer statements where the caller has no sensible way to
// handle a close failure.
//
// Example:
//
//	defer should.Close(f, "closing config file")
func Close(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		slog.Error(msg, "error", err)
	}
}
