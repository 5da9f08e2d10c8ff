package telemetry

import (
	"time"

	"go.trai.ch/preview/internal/core/domain"
)

// MsgSpanStart indicates a span, such as an asset load, has started.
type MsgSpanStart struct {
	SpanID    string
	ParentID  string // Empty for root spans.
	Name      string
	StartTime time.Time
}

// MsgSpanComplete indicates a span has finished.
type MsgSpanComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgSpanLog carries log lines of a span.
type MsgSpanLog struct {
	SpanID string
	Data   []byte
}

// MsgViewers lists the nodes being previewed. It resets the display.
type MsgViewers struct {
	Viewers []string
}

// MsgSceneUpdate carries the state of one preview after a synchronizer tick.
type MsgSceneUpdate struct {
	Status domain.SceneStatus
}
