package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/ui/style"
)

const (
	iconWaiting = style.Circle
	iconLoading = style.Dot
	iconLive    = style.Check
	iconFailed  = style.Cross
	iconHidden  = "-"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.previewList(), m.logPane())
}

func (m *Model) previewList() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("PREVIEWS") + "\n\n")

	end := min(m.ListOffset+m.ListHeight, len(m.Previews))
	start := min(m.ListOffset, end)
	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, m.Previews[i]) + "\n")
	}
	return listStyle.Render(s.String())
}

func (m *Model) renderRow(index int, row *PreviewRow) string {
	icon, st := rowAppearance(row)

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
	}
	return cursor + st.Render(fmt.Sprintf("%s %s %s", icon, row.Viewer, rowSummary(row)))
}

// rowAppearance picks the icon and style of a preview row from its scene state.
func rowAppearance(row *PreviewRow) (string, lipgloss.Style) {
	s := row.Status
	switch {
	case !row.Updated || !s.Ready:
		return iconWaiting, rowWaitingStyle
	case !s.Visible:
		return iconHidden, rowHiddenStyle
	case s.Count(domain.EntryAbsent) > 0:
		return iconFailed, rowFailedStyle
	case s.Count(domain.EntryLoading) > 0:
		return iconLoading, rowLoadingStyle
	default:
		return iconLive, rowLiveStyle
	}
}

func rowSummary(row *PreviewRow) string {
	s := row.Status
	switch {
	case !row.Updated:
		return ""
	case !s.Ready:
		return "(waiting for renderer)"
	case !s.Visible:
		return "(hidden)"
	}
	return fmt.Sprintf("(%d/%d live)", s.Count(domain.EntryLive), s.Targets)
}

func (m *Model) logPane() string {
	row := m.Selected()
	if row == nil {
		return logStyle.Render(titleStyle.Render("LOG (Waiting...)"))
	}

	mode := " (Manual)"
	if m.FollowMode {
		mode = " (Following)"
	}
	parts := []string{titleStyle.Render("LOG: " + row.Viewer + mode)}
	if stats := row.Status.StatsLine(); stats != "" && row.Status.Visible {
		parts = append(parts, statsStyle.Render(stats))
	}
	parts = append(parts, row.Term.View())
	return logStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
