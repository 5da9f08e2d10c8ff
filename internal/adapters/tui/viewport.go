package tui

import (
	"sync/atomic"

	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
)

const (
	// cellWidth and cellHeight are the nominal size of a terminal cell in pixels.
	cellWidth  = 8
	cellHeight = 16
)

var _ ports.Viewport = (*Viewport)(nil)

// Viewport reports the size of the preview pane to synchronizers.
// The model updates it on every window resize; it is safe for concurrent use.
type Viewport struct {
	size atomic.Pointer[domain.Size]
}

// Size returns the pane size in pixels, or false before the first resize.
func (v *Viewport) Size() (domain.Size, bool) {
	s := v.size.Load()
	if s == nil {
		return domain.Size{}, false
	}
	return *s, true
}

func (v *Viewport) setCells(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	v.size.Store(&domain.Size{Width: cols * cellWidth, Height: rows * cellHeight})
}
