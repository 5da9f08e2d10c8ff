// Package tui provides the interactive terminal view of running previews.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/preview/internal/ui/output"
)

// NewModel creates a model rendering to w, or stderr when w is nil.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	return &Model{
		ByViewer:   make(map[string]*PreviewRow),
		Spans:      make(map[string]*PreviewRow),
		FollowMode: true,
		Viewport:   &Viewport{},
	}
}
