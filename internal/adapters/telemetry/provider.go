package telemetry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/preview/internal/core/ports"
)

var _ ports.Tracer = (*OTelTracer)(nil)

// LogSink receives the log lines of spans.
type LogSink interface {
	OnSpanLog(spanID string, data []byte)
}

// OTelTracer implements ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer

	mu   sync.RWMutex
	sink LogSink
}

// NewOTelTracer creates a tracer with the given instrumentation name.
// A nil provider selects the global one.
func NewOTelTracer(provider trace.TracerProvider, name string) *OTelTracer {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &OTelTracer{tracer: provider.Tracer(name)}
}

// WithSink sets where span logs go. Without a sink, they become span events.
func (t *OTelTracer) WithSink(sink LogSink) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = sink
	return t
}

// Start creates a new span. Attributes given as options are set before span
// processors see the span start.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Attributes))
	for _, k := range slices.Sorted(maps.Keys(cfg.Attributes)) {
		attrs = append(attrs, toAttribute(k, cfg.Attributes[k]))
	}
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))

	t.mu.RLock()
	sink := t.sink
	t.mu.RUnlock()

	s := &OTelSpan{span: span}
	if sink != nil {
		spanID := span.SpanContext().SpanID().String()
		s.batcher = NewLineBatcher(0, 0, func(data []byte) {
			sink.OnSpanLog(spanID, data)
		})
	}
	return ctx, s
}

// OTelSpan implements ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *LineBatcher
}

// End flushes the span's log and completes it.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError marks the span as failed and logs the error.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
	_, _ = fmt.Fprintf(s, "error: %v\n", err)
}

// SetAttribute adds a key-value pair to the span and logs it.
func (s *OTelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
	_, _ = fmt.Fprintf(s, "%s=%v\n", key, value)
}

// Write adds p to the span's log.
func (s *OTelSpan) Write(p []byte) (int, error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float32:
		return attribute.Float64(key, float64(v))
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}

// SpanID returns the hex id of the span, as reported to renderers.
func (s *OTelSpan) SpanID() string {
	return s.span.SpanContext().SpanID().String()
}
