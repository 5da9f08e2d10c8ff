// Package linear provides a synchronous, line-oriented renderer for CI and piped output.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
	"go.trai.ch/preview/internal/ui/output"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for non-interactive environments.
// Span output goes to stdout prefixed with the span name; lifecycle lines go to stderr.
// Scene updates are printed only when a preview's summary changes.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	spans   map[string]*spanState
	summary map[string]string

	stopOnce sync.Once
	done     chan struct{}
}

type spanState struct {
	name      string
	startTime time.Time
	partial   bytes.Buffer
}

// NewRenderer creates a Renderer. Nil writers select os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, output.ColorProfileANSI),
		spans:   make(map[string]*spanState),
		summary: make(map[string]string),
		done:    make(chan struct{}),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop prints any partial span lines still buffered and releases Wait.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.spans {
		r.flushLocked(s)
	}
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnViewers prints the nodes being previewed.
func (r *Renderer) OnViewers(viewers []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.summary)
	_, _ = fmt.Fprintf(r.stderr, "Previewing %d node(s): %s\n", len(viewers), strings.Join(viewers, ", "))
}

// OnSceneUpdate prints the summary of a preview when it differs from the last one printed.
func (r *Renderer) OnSceneUpdate(status domain.SceneStatus) {
	line := Summary(status)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.summary[status.Viewer] == line {
		return
	}
	r.summary[status.Viewer] = line
	prefix := r.output.String(fmt.Sprintf("[%s]", status.Viewer)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prefix, line)
}

// Summary renders the one-line description of a preview.
func Summary(s domain.SceneStatus) string {
	switch {
	case !s.Ready:
		return "waiting for renderer"
	case !s.Visible:
		return "hidden"
	}
	line := fmt.Sprintf("%d target(s): %d live, %d loading, %d failed",
		s.Targets, s.Count(domain.EntryLive), s.Count(domain.EntryLoading), s.Count(domain.EntryAbsent))
	if stats := s.StatsLine(); stats != "" {
		line += " | " + stats
	}
	return line
}

// OnSpanStart prints a load start line.
func (r *Renderer) OnSpanStart(spanID, _, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans[spanID] = &spanState{name: name, startTime: startTime}
	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Loading...\n", prefix)
}

// OnSpanLog prints complete lines of span output with the span name as prefix.
func (r *Renderer) OnSpanLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}
	s.partial.Write(data)
	for {
		i := bytes.IndexByte(s.partial.Bytes(), '\n')
		if i < 0 {
			return
		}
		r.printLineLocked(s.name, s.partial.Next(i+1))
	}
}

// OnSpanComplete prints the outcome of a span.
func (r *Renderer) OnSpanComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}
	r.flushLocked(s)
	delete(r.spans, spanID)

	duration := endTime.Sub(s.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", s.name)
	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Loaded in %v\n", prefix, symbol, duration)
}

// flushLocked prints a buffered partial line. Callers hold mu.
func (r *Renderer) flushLocked(s *spanState) {
	if s.partial.Len() > 0 {
		r.printLineLocked(s.name, s.partial.Bytes())
		s.partial.Reset()
	}
}

// printLineLocked prints one line with the span name prefix. Callers hold mu.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, line)
}
