package tui_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/preview/internal/adapters/telemetry"
	"go.trai.ch/preview/internal/adapters/tui"
	"go.trai.ch/preview/internal/core/domain"
)

func update(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(*tui.Model), cmd
}

func newModel(t *testing.T, viewers ...string) *tui.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	m, _ := update(tui.NewModel(nil), telemetry.MsgViewers{Viewers: viewers})
	return m
}

func loading(viewer string) domain.SceneStatus {
	return domain.SceneStatus{
		Viewer:  viewer,
		Ready:   true,
		Visible: true,
		Targets: 1,
		Entries: []domain.EntryStatus{{Key: "live_0", State: domain.EntryLoading}},
	}
}

func TestModel_Viewers(t *testing.T) {
	m := newModel(t, "5", "9")

	require.Len(t, m.Previews, 2)
	assert.Equal(t, "5", m.Previews[0].Viewer)
	assert.Same(t, m.Previews[1], m.ByViewer["9"])
	assert.Same(t, m.Previews[0], m.Selected())
	assert.False(t, m.Previews[0].Updated)

	m, _ = update(m, telemetry.MsgViewers{Viewers: []string{"7"}})
	require.Len(t, m.Previews, 1)
	assert.NotContains(t, m.ByViewer, "5")
}

func TestModel_SceneUpdate(t *testing.T) {
	m := newModel(t, "5")

	m, _ = update(m, telemetry.MsgSceneUpdate{Status: loading("5")})
	m, _ = update(m, telemetry.MsgSceneUpdate{Status: loading("unknown")})

	row := m.ByViewer["5"]
	assert.True(t, row.Updated)
	assert.Equal(t, 1, row.Status.Count(domain.EntryLoading))
}

func TestModel_SpanLifecycle(t *testing.T) {
	m := newModel(t, "5", "9")
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = update(m, telemetry.MsgSpanStart{SpanID: "s1", Name: "9/mesh_id_1_0"})
	assert.Equal(t, 1, m.SelectedIdx, "follow mode selects the loading preview")
	assert.Same(t, m.ByViewer["9"], m.Spans["s1"])

	m, _ = update(m, telemetry.MsgSpanLog{SpanID: "s1", Data: []byte("meshes=2\n")})
	m, _ = update(m, telemetry.MsgSpanComplete{SpanID: "s1"})
	assert.NotContains(t, m.Spans, "s1")

	m, _ = update(m, telemetry.MsgSpanStart{SpanID: "s2", Name: "9/mesh_id_2_0"})
	m, _ = update(m, telemetry.MsgSpanComplete{SpanID: "s2", Err: errors.New("404 Not Found")})

	view := m.ByViewer["9"].Term.View()
	assert.Contains(t, view, "mesh_id_1_0 loading")
	assert.Contains(t, view, "meshes=2")
	assert.Contains(t, view, "loaded")
	assert.Contains(t, view, "failed: 404 Not Found")
	assert.Equal(t, 0, m.ByViewer["5"].Term.UsedHeight())
}

func TestModel_SpansOfUnknownViewersAreIgnored(t *testing.T) {
	m := newModel(t, "5")

	m, _ = update(m, telemetry.MsgSpanStart{SpanID: "s1", Name: "3/live_0"})
	m, _ = update(m, telemetry.MsgSpanLog{SpanID: "s1", Data: []byte("x\n")})
	m, _ = update(m, telemetry.MsgSpanComplete{SpanID: "s1"})

	assert.Empty(t, m.Spans)
	assert.Equal(t, 0, m.ByViewer["5"].Term.UsedHeight())
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(t, "1", "2", "3")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, m.SelectedIdx)
	assert.False(t, m.FollowMode)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.SelectedIdx)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.SelectedIdx)

	m, _ = update(m, telemetry.MsgSceneUpdate{Status: loading("3")})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.FollowMode)
	assert.Equal(t, 2, m.SelectedIdx, "esc jumps to the preview that is loading")

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ListScrollsWithSelection(t *testing.T) {
	m := newModel(t, "1", "2", "3", "4", "5", "6")
	m.ListHeight = 3

	for range 4 {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 4, m.SelectedIdx)
	assert.Equal(t, 2, m.ListOffset)

	for range 4 {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.SelectedIdx)
	assert.Equal(t, 0, m.ListOffset)
}

func TestModel_ResizeUpdatesViewport(t *testing.T) {
	m := newModel(t, "5")

	_, ok := m.Viewport.Size()
	assert.False(t, ok)

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 66, m.LogWidth)
	assert.Positive(t, m.ListHeight)
	assert.Equal(t, m.LogWidth, m.Previews[0].Term.Width)
	assert.Equal(t, m.LogHeight, m.Previews[0].Term.Height)

	size, ok := m.Viewport.Size()
	require.True(t, ok)
	assert.Equal(t, domain.Size{Width: 66 * 8, Height: m.LogHeight * 16}, size)
}

func TestModel_View(t *testing.T) {
	m := newModel(t, "5", "9")
	assert.Equal(t, "Initializing...", m.View())

	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 20})
	m, _ = update(m, telemetry.MsgSceneUpdate{Status: loading("5")})
	m, _ = update(m, telemetry.MsgSceneUpdate{Status: domain.SceneStatus{Viewer: "9", Ready: true}})

	view := m.View()
	assert.Contains(t, view, "PREVIEWS")
	assert.Contains(t, view, "● 5 (0/1 live)")
	assert.Contains(t, view, "- 9 (hidden)")
	assert.Contains(t, view, "LOG: 5 (Following)")
}

func TestModel_ViewShowsStats(t *testing.T) {
	m := newModel(t, "5")
	m, _ = update(m, tea.WindowSizeMsg{Width: 160, Height: 20})

	status := domain.SceneStatus{
		Viewer:  "5",
		Ready:   true,
		Visible: true,
		Stats:   map[string]any{"vertices": 1200, "faces": 400},
	}
	m, _ = update(m, telemetry.MsgSceneUpdate{Status: status})
	assert.Contains(t, m.View(), "faces=400 vertices=1200")

	status.Visible = false
	m, _ = update(m, telemetry.MsgSceneUpdate{Status: status})
	assert.NotContains(t, m.View(), "vertices=1200")
}

func TestSplitSpanName(t *testing.T) {
	viewer, key := tui.SplitSpanName("5/mesh_id_1_0")
	assert.Equal(t, "5", viewer)
	assert.Equal(t, "mesh_id_1_0", key)

	viewer, key = tui.SplitSpanName("tick")
	assert.Equal(t, "tick", viewer)
	assert.Empty(t, key)
}
