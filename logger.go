package polyclip

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/polyclip/backend"
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

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for polyclip and its backends.
// By default, polyclip produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by polyclip:
//   - [slog.LevelDebug]: every engine call with its input and result sizes
//   - [slog.LevelInfo]: native library loaded
//   - [slog.LevelWarn]: engine failure status, outputs released undecoded
//
// Example:
//
//	polyclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to the process-wide engine's library if it logs.
	if e := defaultEngine.Load(); e != nil {
		propagateLogger(e.lib, l)
	}
}

// Logger returns the current logger used by polyclip.
// Backends that implement SetLogger(*slog.Logger) receive the same logger
// when an engine is created. The backend of the Default engine is also
// updated by every later SetLogger call.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by backends that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a backend if it implements
// the loggerSetter interface. Called from both SetLogger and NewEngine
// so a backend always has the current logger.
func propagateLogger(lib backend.Library, l *slog.Logger) {
	if ls, ok := lib.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
