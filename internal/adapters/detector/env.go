// Package detector picks the renderer for the terminal the preview runs in.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive TUI renderer.
	ModeTUI
	// ModeLinear forces the linear CI renderer.
	ModeLinear
)

// String returns the flag value selecting the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// IsTerminal reports whether stdout is attached to a terminal. Tests replace it.
var IsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// DetectEnvironment returns the recommended output mode based on the environment.
// Non-terminal stdout and CI=true|1 select the linear renderer.
func DetectEnvironment() OutputMode {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" || !IsTerminal() {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the --output-mode flag to the detected mode.
// "ci" is an alias of "linear"; an empty flag means "auto".
func ResolveMode(autoDetected OutputMode, userFlag string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(userFlag)) {
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return autoDetected, zerr.With(domain.ErrInvalidOutputMode, "output_mode", userFlag)
	}
}
