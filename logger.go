package viewmath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var (
	silent  = slog.New(discardHandler{})
	current atomic.Pointer[slog.Logger]
)

// SetLogger sets the logger shared by the sub-packages. Only Debug records
// are written: projection cache refreshes, config loading, viewport resizes
// and pick results. nil restores the silent default.
//
//	viewmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil || l.Handler() == silent.Handler() {
		current.Store(nil)
		return
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a logger that drops
// everything.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}

// Component returns Logger tagged with component=name.
func Component(name string) *slog.Logger {
	l := Logger()
	if l == silent {
		return l
	}
	return l.With("component", name)
}
