package tui

import (
	"bytes"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/midterm"
)

// Vterm is a scrollable virtual terminal holding the span output of one preview.
// It sticks to the bottom while new output arrives unless scrolled up.
type Vterm struct {
	vt      *midterm.Terminal
	Offset  int
	Height  int
	Width   int
	viewBuf bytes.Buffer
	mu      sync.Mutex
}

// defaultVtermHeight is the view height until the window size is known.
const defaultVtermHeight = 24

// NewVterm creates an empty Vterm.
func NewVterm() *Vterm {
	return &Vterm{vt: midterm.NewAutoResizingTerminal(), Height: defaultVtermHeight}
}

// Write appends output to the terminal.
func (v *Vterm) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	atBottom := v.Offset >= v.maxOffset()
	n, err := v.vt.Write(p)
	if atBottom {
		v.Offset = v.maxOffset()
	}
	return n, err
}

// SetHeight updates the view height.
func (v *Vterm) SetHeight(h int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	atBottom := v.Offset >= v.maxOffset()
	v.Height = max(h, 1)
	if atBottom {
		v.Offset = v.maxOffset()
	}
	v.clamp()
}

// SetWidth updates the terminal width.
func (v *Vterm) SetWidth(w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.Width = max(w, 1)
	v.vt.ResizeX(v.Width)
}

// UsedHeight returns the number of lines written so far.
func (v *Vterm) UsedHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vt.UsedHeight()
}

// ScrollToBottom moves the view to the latest output.
func (v *Vterm) ScrollToBottom() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Offset = v.maxOffset()
}

// View renders the visible lines.
func (v *Vterm) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.clamp()
	v.viewBuf.Reset()
	for i := range v.Height {
		row := v.Offset + i
		if row >= v.vt.UsedHeight() {
			break
		}
		if i > 0 {
			_ = v.viewBuf.WriteByte('\n')
		}
		_ = v.vt.RenderLine(&v.viewBuf, row)
	}
	return v.viewBuf.String()
}

// Update scrolls the terminal on navigation keys.
func (v *Vterm) Update(msg tea.Msg) {
	v.mu.Lock()
	defer v.mu.Unlock()

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}
	switch key.String() {
	case "pgup":
		v.Offset -= v.Height
	case "pgdown":
		v.Offset += v.Height
	case "home":
		v.Offset = 0
	case "end":
		v.Offset = v.maxOffset()
	}
	v.clamp()
}

// clamp keeps Offset within the written lines. Callers hold mu.
func (v *Vterm) clamp() {
	v.Offset = min(max(v.Offset, 0), v.maxOffset())
}

func (v *Vterm) maxOffset() int {
	return max(v.vt.UsedHeight()-v.Height, 0)
}
