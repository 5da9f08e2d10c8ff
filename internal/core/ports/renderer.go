package ports

import (
	"context"
	"time"

	"go.trai.ch/preview/internal/core/domain"
)

// SceneObserver receives the state of a preview after every synchronizer tick.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type SceneObserver interface {
	// OnSceneUpdate is called with the state of a preview after a tick.
	OnSceneUpdate(status domain.SceneStatus)
}

// Renderer is the abstraction for status output.
// It decouples telemetry collection from presentation,
// allowing the same event stream to drive either a rich TUI or linear logs.
type Renderer interface {
	SceneObserver

	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnViewers is called with the nodes being previewed.
	OnViewers(viewers []string)

	// OnSpanStart is called when a traced unit of work, such as an asset load, begins.
	OnSpanStart(spanID, parentID, name string, startTime time.Time)

	// OnSpanLog is called when a traced unit of work emits output.
	OnSpanLog(spanID string, data []byte)

	// OnSpanComplete is called when a traced unit of work finishes.
	OnSpanComplete(spanID string, endTime time.Time, err error)
}
