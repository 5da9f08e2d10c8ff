package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/preview/internal/adapters/telemetry"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer runs the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Viewport returns the viewport the model keeps up to date.
func (r *Renderer) Viewport() ports.Viewport {
	return r.model.Viewport
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnViewers resets the TUI to the given previews.
func (r *Renderer) OnViewers(viewers []string) {
	r.program.Send(telemetry.MsgViewers{Viewers: viewers})
}

// OnSceneUpdate forwards a preview's state to the TUI.
func (r *Renderer) OnSceneUpdate(status domain.SceneStatus) {
	r.program.Send(telemetry.MsgSceneUpdate{Status: status})
}

// OnSpanStart forwards span start events to the TUI.
func (r *Renderer) OnSpanStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(telemetry.MsgSpanStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnSpanLog forwards span log data to the TUI.
func (r *Renderer) OnSpanLog(spanID string, data []byte) {
	r.program.Send(telemetry.MsgSpanLog{SpanID: spanID, Data: data})
}

// OnSpanComplete forwards span completion events to the TUI.
func (r *Renderer) OnSpanComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(telemetry.MsgSpanComplete{SpanID: spanID, EndTime: endTime, Err: err})
}
