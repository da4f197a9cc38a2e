package flake

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can race with a running pipeline; Generate loads it once per
// stage, and the worker goroutines of Rasterize and Extrude never log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for flake and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by flake:
//   - [slog.LevelDebug]: per-stage statistics (distance field grid size and
//     cell, contour loop count and area, extruded vertex and face counts,
//     the final Generate summary, STL bytes written, preview size)
//   - [slog.LevelWarn]: degraded output (fallback outline substituted,
//     invalid tuning ignored by WithTuning)
//
// Example:
//
//	flake.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The export and preview packages log
// through it so a single SetLogger call configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
