package telemetry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/preview/internal/adapters/telemetry"
	"go.trai.ch/preview/internal/core/ports"
)

type sink struct {
	mu   sync.Mutex
	logs map[string]string
}

func (s *sink) OnSpanLog(spanID string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logs == nil {
		s.logs = make(map[string]string)
	}
	s.logs[spanID] += string(data)
}

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return sr, tp
}

func attrs(kvs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}

func TestOTelTracer_StartAttributesVisibleOnStart(t *testing.T) {
	sr, tp := newRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(t.Context(), "5/live_0",
		ports.WithAttribute("viewer", "5"),
		ports.WithAttribute("url", "http://host/view?filename=a.glb&type=input"),
	)

	started := sr.Started()
	require.Len(t, started, 1)
	assert.Equal(t, map[string]string{
		"url":    "http://host/view?filename=a.glb&type=input",
		"viewer": "5",
	}, attrs(started[0].Attributes()))

	span.End()
	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, "5/live_0", sr.Ended()[0].Name())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tp := newRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(t.Context(), "load")
	span.SetAttribute("meshes", 2)
	span.SetAttribute("scale", float32(0.5))
	span.SetAttribute("cached", true)
	span.SetAttribute("tags", []string{"a", "b"})
	span.SetAttribute("size", struct{ W, H int }{1, 2})
	span.End()

	got := attrs(sr.Ended()[0].Attributes())
	assert.Equal(t, "2", got["meshes"])
	assert.Equal(t, "0.5", got["scale"])
	assert.Equal(t, "true", got["cached"])
	assert.Equal(t, `["a","b"]`, got["tags"])
	assert.Equal(t, "{1 2}", got["size"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := newRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(t.Context(), "load")
	span.RecordError(errors.New("404 Not Found"))
	span.End()

	ended := sr.Ended()[0]
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "404 Not Found", ended.Status().Description)
	require.Len(t, ended.Events(), 2)
	assert.Equal(t, "exception", ended.Events()[0].Name)
	assert.Equal(t, "log", ended.Events()[1].Name)
}

func TestOTelTracer_SinkReceivesSpanLog(t *testing.T) {
	_, tp := newRecorder(t)
	s := &sink{}
	tracer := telemetry.NewOTelTracer(tp, "test").WithSink(s)

	_, span := tracer.Start(t.Context(), "load")
	span.SetAttribute("meshes", 2)
	span.RecordError(errors.New("boom"))
	span.End()

	otelSpan, ok := span.(*telemetry.OTelSpan)
	require.True(t, ok)
	id := otelSpan.SpanID()

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, "meshes=2\nerror: boom\n", s.logs[id])
}
