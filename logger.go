package arimage

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// loggerHooks are notified whenever SetLogger replaces the logger.
var loggerHooks atomic.Pointer[[]func(*slog.Logger)]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for arimage and all its sub-packages.
// By default, arimage produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by arimage:
//   - [slog.LevelDebug]: per-asset loads, descriptor resolution misses
//   - [slog.LevelInfo]: registry and backend lifecycle events
//   - [slog.LevelWarn]: skipped assets, unreadable asset directories
//
// Example:
//
//	arimage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	if hooks := loggerHooks.Load(); hooks != nil {
		for _, h := range *hooks {
			h(l)
		}
	}
}

// Logger returns the current logger used by arimage.
// Sub-packages (registry/, overlay/, backend/...) call this to share the
// same logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// OnSetLogger registers fn to be called with the new logger every time
// SetLogger is called. Backends use it to forward the logger to the
// graphics layer they wrap. fn is also called once with the current logger.
func OnSetLogger(fn func(*slog.Logger)) {
	for {
		old := loggerHooks.Load()
		var next []func(*slog.Logger)
		if old != nil {
			next = append(next, *old...)
		}
		next = append(next, fn)
		if loggerHooks.CompareAndSwap(old, &next) {
			break
		}
	}
	fn(Logger())
}
