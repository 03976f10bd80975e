package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// Observer is told about every completed Patch call.
type Observer interface {
	ObservePatch(res Result, elapsed time.Duration, err error)
}

// Tracer opens a span around a Patch call.
type Tracer interface {
	StartPatch(ctx context.Context, prev *host.Node, next *vdom.VNode) (context.Context, Span)
}

// Span is the handle returned by Tracer.StartPatch.
type Span interface {
	End(res Result, err error)
}

// Engine runs Patch with logging, observation and tracing.
// An Engine holds no per-call state and may be shared.
type Engine struct {
	logger   *slog.Logger
	observer Observer
	tracer   Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver sets the observer notified after each call.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithTracer sets the tracer used to open a span per call.
func WithTracer(t Tracer) Option {
	return func(e *Engine) {
		e.tracer = t
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default().With("component", "reconcile"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Patch updates prev to match next. With no focus inside prev, or no
// counterpart for the focus holder in next, prev is replaced wholesale;
// otherwise prev is reconciled in place and keeps its focus holder.
// A nil next removes prev. ctx is passed to the tracer, and the context
// it returns reaches the logger so handlers can attach the span.
func (e *Engine) Patch(ctx context.Context, h Host, prev *host.Node, next *vdom.VNode) (Result, error) {
	start := time.Now()

	var span Span
	if e.tracer != nil {
		ctx, span = e.tracer.StartPatch(ctx, prev, next)
	}

	res, err := patch(h, prev, next)
	elapsed := time.Since(start)

	if span != nil {
		span.End(res, err)
	}
	if e.observer != nil {
		e.observer.ObservePatch(res, elapsed, err)
	}

	if err != nil {
		e.logger.DebugContext(ctx, "patch failed", "error", err, "duration", elapsed)
		return res, err
	}
	e.logger.DebugContext(ctx, "patch",
		"outcome", res.Outcome.String(),
		"reason", res.Reason.String(),
		"spine_depth", res.SpineDepth,
		"duration", elapsed,
	)
	return res, nil
}
