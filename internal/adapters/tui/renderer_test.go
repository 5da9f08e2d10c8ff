package tui_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/preview/internal/adapters/tui"
	"go.trai.ch/preview/internal/core/domain"
)

func newRenderer(t *testing.T) (*tui.Renderer, *tui.Model) {
	t.Helper()
	model := tui.NewModel(io.Discard)
	r := tui.NewRenderer(model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
	return r, model
}

func TestRenderer_Lifecycle(t *testing.T) {
	r, _ := newRenderer(t)

	require.NoError(t, r.Start(t.Context()))
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	r, model := newRenderer(t)
	require.NoError(t, r.Start(t.Context()))

	now := time.Now()
	r.OnViewers([]string{"5"})
	r.OnSceneUpdate(domain.SceneStatus{Viewer: "5", Ready: true, Visible: true})
	r.OnSpanStart("s1", "", "5/live_0", now)
	r.OnSpanLog("s1", []byte("meshes=1\n"))
	r.OnSpanComplete("s1", now, errors.New("boom"))

	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	row := model.ByViewer["5"]
	require.NotNil(t, row)
	assert.True(t, row.Updated)
	assert.Empty(t, model.Spans)
	assert.Contains(t, row.Term.View(), "failed: boom")
	assert.Same(t, model.Viewport, r.Viewport())
}
