package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/preview/internal/ui/style"
)

var (
	rowWaitingStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	rowLoadingStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	rowLiveStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	rowFailedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	rowHiddenStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	statsStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	listStyle = lipgloss.NewStyle().
			MarginRight(2)

	logStyle = lipgloss.NewStyle()
)
