// Package log routes hamqtt's internal logging to a caller-provided
// slog.Handler. Logs are discarded until To is called with a handler.
package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
)

// Error returns a slog.Attr for the provided error under ErrorKey.
func Error(e error) slog.Attr {
	return slog.Any(ErrorKey, e)
}

// To directs all loggers created by ForComponent to the provided
// slog.Handler. It is safe to call at any time, including while other
// goroutines are logging.
func To(h slog.Handler) {
	sink.target.Store(&h)
}

// ForComponent constructs a slog.Logger tagged with the component name under
// ComponentKey. The returned logger follows the handler installed by To,
// even when To is called after it was constructed.
func ForComponent(component string) *slog.Logger {
	return slog.New(sink).With(slog.String(ComponentKey, component))
}

var sink = &swappableHandler{}

// swappableHandler forwards to whichever slog.Handler is currently installed,
// behaving as a no-op while none is.
type swappableHandler struct {
	target atomic.Pointer[slog.Handler]
}

var _ slog.Handler = (*swappableHandler)(nil)

func (s *swappableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h := s.target.Load(); h != nil {
		return (*h).Enabled(ctx, level)
	}

	return false
}

func (s *swappableHandler) Handle(ctx context.Context, record slog.Record) error {
	if h := s.target.Load(); h != nil {
		return (*h).Handle(ctx, record)
	}

	return nil
}

func (s *swappableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if h := s.target.Load(); h != nil {
		return (*h).WithAttrs(attrs)
	}

	return s
}

func (s *swappableHandler) WithGroup(name string) slog.Handler {
	if h := s.target.Load(); h != nil {
		return (*h).WithGroup(name)
	}

	return s
}
