package ports

import "context"

// SpanConfig holds the options applied when starting a span.
type SpanConfig struct {
	Attributes map[string]any
}

// SpanOption configures a span at start.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts, so span processors see it in OnStart.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}

// Tracer starts spans around units of work such as asset loads.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a span and returns a context carrying it.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span is a single traced unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError marks the span as failed.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
