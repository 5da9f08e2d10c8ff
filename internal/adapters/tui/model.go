package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/preview/internal/adapters/telemetry"
	"go.trai.ch/preview/internal/core/domain"
)

const (
	previewListWidthRatio = 0.3
	logPaneBorderWidth    = 4
	// statsHeight is the log pane row reserved for the execution statistics.
	statsHeight = 1
)

// PreviewRow is one viewed node in the list.
type PreviewRow struct {
	Viewer string
	Status domain.SceneStatus
	// Updated is false until the first scene update arrives.
	Updated bool
	Term    *Vterm
}

// Model is the Bubble Tea model of the preview monitor.
type Model struct {
	Previews    []*PreviewRow
	ByViewer    map[string]*PreviewRow
	Spans       map[string]*PreviewRow
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	LogWidth    int
	LogHeight   int
	// FollowMode moves the selection to the preview with the latest load activity.
	FollowMode bool
	Viewport   *Viewport
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the selected preview, or nil.
func (m *Model) Selected() *PreviewRow {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Previews) {
		return m.Previews[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) selectRow(row *PreviewRow) {
	for i, r := range m.Previews {
		if r == row {
			m.SelectedIdx = i
			break
		}
	}
	m.ensureVisible()
	row.Term.ScrollToBottom()
}

func (m *Model) newTerm() *Vterm {
	term := NewVterm()
	if m.LogWidth > 0 && m.LogHeight > 0 {
		term.SetWidth(m.LogWidth)
		term.SetHeight(m.LogHeight)
	}
	return term
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case telemetry.MsgViewers:
		m.Previews = make([]*PreviewRow, len(msg.Viewers))
		m.ByViewer = make(map[string]*PreviewRow, len(msg.Viewers))
		m.Spans = make(map[string]*PreviewRow)
		for i, viewer := range msg.Viewers {
			row := &PreviewRow{Viewer: viewer, Term: m.newTerm()}
			m.Previews[i] = row
			m.ByViewer[viewer] = row
		}
		m.SelectedIdx, m.ListOffset = 0, 0

	case telemetry.MsgSceneUpdate:
		if row, ok := m.ByViewer[msg.Status.Viewer]; ok {
			row.Status = msg.Status
			row.Updated = true
		}

	case telemetry.MsgSpanStart:
		viewer, key := splitSpanName(msg.Name)
		row, ok := m.ByViewer[viewer]
		if !ok {
			return m, nil
		}
		m.Spans[msg.SpanID] = row
		_, _ = fmt.Fprintf(row.Term, "%s %s loading\n", iconLoading, key)
		if m.FollowMode {
			m.selectRow(row)
		}

	case telemetry.MsgSpanLog:
		if row, ok := m.Spans[msg.SpanID]; ok {
			_, _ = row.Term.Write(msg.Data)
		}

	case telemetry.MsgSpanComplete:
		row, ok := m.Spans[msg.SpanID]
		if !ok {
			return m, nil
		}
		delete(m.Spans, msg.SpanID)
		if msg.Err != nil {
			_, _ = fmt.Fprintf(row.Term, "%s failed: %v\n", iconFailed, msg.Err)
		} else {
			_, _ = fmt.Fprintf(row.Term, "%s loaded\n", iconLive)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.FollowMode = false
			m.ensureVisible()
		}
	case "j", "down":
		if m.SelectedIdx < len(m.Previews)-1 {
			m.SelectedIdx++
			m.FollowMode = false
			m.ensureVisible()
		}
	case "esc":
		m.FollowMode = true
		for _, row := range m.Previews {
			if row.Status.Count(domain.EntryLoading) > 0 {
				m.selectRow(row)
				break
			}
		}
	default:
		if row := m.Selected(); row != nil {
			row.Term.Update(msg)
		}
	}
	return nil
}

func (m *Model) resize(width, height int) {
	listWidth := int(float64(width) * previewListWidthRatio)
	m.LogWidth = width - listWidth - logPaneBorderWidth
	m.LogHeight = height - lipgloss.Height(titleStyle.Render("LOG")) - statsHeight
	m.ListHeight = height - lipgloss.Height(titleStyle.Render("PREVIEWS")+"\n\n")
	m.ensureVisible()

	for _, row := range m.Previews {
		row.Term.SetWidth(m.LogWidth)
		row.Term.SetHeight(m.LogHeight)
	}
	m.Viewport.setCells(m.LogWidth, m.LogHeight)
}

// splitSpanName splits a load span name of the form viewer/key.
func splitSpanName(name string) (viewer, key string) {
	viewer, key, found := strings.Cut(name, "/")
	if !found {
		return name, ""
	}
	return viewer, key
}
