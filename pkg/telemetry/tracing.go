package telemetry

import (
	"context"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/reconcile"
	"github.com/vango-dev/keepfocus/pkg/vdom"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTracerName = "keepfocus"

	// SpanName is the name of the span opened around each patch.
	SpanName = "keepfocus.patch"
)

// TracerConfig configures the OpenTelemetry tracer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "keepfocus").
	TracerName string

	// Provider supplies the tracer. Default: the global provider.
	Provider trace.TracerProvider

	// AttributeExtractor adds custom attributes when a span starts.
	AttributeExtractor func(prev *host.Node, next *vdom.VNode) []attribute.KeyValue
}

// TracerOption configures the tracer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = tp
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(prev *host.Node, next *vdom.VNode) []attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		c.AttributeExtractor = extractor
	}
}

// Tracer opens a span per patch.
type Tracer struct {
	config TracerConfig
	tracer trace.Tracer
}

// NewTracer creates a Tracer.
//
// Configure the global provider in main() before creating it:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}

	var tracer trace.Tracer
	if config.Provider != nil {
		tracer = config.Provider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}
	return &Tracer{config: config, tracer: tracer}
}

// StartPatch implements reconcile.Tracer.
func (t *Tracer) StartPatch(ctx context.Context, prev *host.Node, next *vdom.VNode) (context.Context, reconcile.Span) {
	attrs := []attribute.KeyValue{
		attribute.Int("keepfocus.prev_nodes", prev.Count()),
		attribute.Int("keepfocus.next_nodes", next.Count()),
		attribute.Bool("keepfocus.remove", next == nil),
	}
	if prev != nil && prev.IsElement() {
		attrs = append(attrs, attribute.String("keepfocus.root_tag", prev.Tag()))
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(prev, next)...)
	}

	spanCtx, span := t.tracer.Start(ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return spanCtx, patchSpan{span: span}
}

type patchSpan struct {
	span trace.Span
}

// End records the result and ends the span.
func (s patchSpan) End(res reconcile.Result, err error) {
	defer s.span.End()

	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		if code := errors.Code(err); code != "" {
			s.span.SetAttributes(attribute.String("keepfocus.error_code", code))
		}
		return
	}

	s.span.SetAttributes(
		attribute.String("keepfocus.outcome", res.Outcome.String()),
		attribute.Int("keepfocus.spine_depth", res.SpineDepth),
	)
	if res.Outcome == reconcile.Replaced {
		s.span.SetAttributes(attribute.String("keepfocus.reason", res.Reason.String()))
	}
	s.span.SetStatus(codes.Ok, "")
}

var _ reconcile.Tracer = (*Tracer)(nil)
