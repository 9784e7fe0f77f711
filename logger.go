package stroker

import (
	"log/slog"

	"github.com/gogpu/stroker/internal/logging"
)

// SetLogger configures the logger for stroker and all its sub-packages.
// By default, stroker produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by stroker:
//   - [slog.LevelDebug]: stage diagnostics (subdivision depth limits, clamped
//     miters, dash counts)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	stroker.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by stroker.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
