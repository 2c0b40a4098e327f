// Package swish logs HTTP requests and responses.
//
// A Hook prints an arrival line when a request reaches the server and a
// departure line once the response is produced:
//
//	<- GET /
//	-> GET / 200 12.34
//
// Lines can be colored by HTTP method and the departure line can carry the
// elapsed milliseconds. Framework adapters live in the swishhttp, swishgin
// and swishecho packages.
//
// Usage:
//
//	hook := swish.New(swish.Options{Level: swish.LevelVerbose}, nil)
//	mux := http.NewServeMux()
//	http.ListenAndServe(":8080", swishhttp.Middleware(hook)(mux))
package swish

import (
	"context"
	"fmt"
	"strconv"

	"github.com/flosswash/swish/timer"
)

// ErrInvalidState is returned when a departure is logged for a request
// whose timer was never started. It is the same value as
// timer.ErrInvalidState.
var ErrInvalidState = timer.ErrInvalidState

// Hook formats and emits the access log lines. A Hook is safe for
// concurrent use; all per-request state lives in RequestContext.
type Hook struct {
	cfg  Config
	sink Sink
}

// New resolves opts and returns a Hook writing to sink. A nil sink
// writes to standard output.
func New(opts Options, sink Sink) *Hook {
	if sink == nil {
		sink = Stdout()
	}
	return &Hook{
		cfg:  Resolve(opts),
		sink: sink,
	}
}

// Config returns the resolved configuration.
func (h *Hook) Config() Config {
	return h.cfg
}

// RequestContext carries the state of one request between OnRequestStart
// and OnResponseEnd.
type RequestContext struct {
	timer *timer.Timer
}

// NewRequestContext wraps an existing timer. OnRequestStart is the usual
// way to obtain a context.
func NewRequestContext(t *timer.Timer) *RequestContext {
	return &RequestContext{timer: t}
}

// Timer returns the request timer, or nil for an empty context.
func (rc *RequestContext) Timer() *timer.Timer {
	if rc == nil {
		return nil
	}
	return rc.timer
}

// OnRequestStart starts the request timer and emits the arrival line.
func (h *Hook) OnRequestStart(method, path string) *RequestContext {
	t := timer.New()
	t.Start()
	h.emit(method, "<- "+method+" "+path)
	return &RequestContext{timer: t}
}

// OnResponseEnd stops the request timer and emits the departure line. If
// rc was not produced by OnRequestStart, nothing is emitted and an error
// wrapping ErrInvalidState is returned.
func (h *Hook) OnResponseEnd(rc *RequestContext, method, path string, status int) error {
	t := rc.Timer()
	if t == nil {
		return fmt.Errorf("swish: no request context for %s %s: %w", method, path, ErrInvalidState)
	}
	elapsed, err := t.End()
	if err != nil {
		return fmt.Errorf("swish: %s %s: %w", method, path, err)
	}

	var duration string
	if h.cfg.Timestamp {
		duration = strconv.FormatFloat(elapsed, 'f', 2, 64)
	}
	h.emit(method, "-> "+method+" "+path+" "+strconv.Itoa(status)+" "+duration)
	return nil
}

func (h *Hook) emit(method, line string) {
	if h.cfg.Colors {
		line = Paint(ColorFor(method), line)
	}
	h.sink(line)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying rc.
func NewContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx by NewContext.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(contextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}
