// Package telemetry bridges OpenTelemetry spans to the status renderers.
package telemetry

import (
	"bytes"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultSizeLimit is the buffered byte count that forces a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the interval at which complete lines are flushed.
	DefaultTimeLimit = 50 * time.Millisecond
)

var errBatcherClosed = zerr.New("line batcher is closed")

// LineBatcher buffers writes and hands them on in whole lines, either every time
// limit or once size limit bytes are buffered. A partial last line is held back
// until it is completed or the batcher is closed. It is safe for concurrent use.
type LineBatcher struct {
	sizeLimit int
	onFlush   func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	ticker *time.Ticker
	stopCh chan struct{}
	closed bool
}

// NewLineBatcher starts a batcher. Non-positive limits select the defaults.
// Call Close to stop the background flusher.
func NewLineBatcher(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *LineBatcher {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	b := &LineBatcher{
		sizeLimit: sizeLimit,
		onFlush:   onFlush,
		ticker:    time.NewTicker(timeLimit),
		stopCh:    make(chan struct{}),
	}
	go b.run()
	return b
}

// Write buffers p. A full buffer is flushed, including any partial line.
func (b *LineBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errBatcherClosed
	}
	n, _ := b.buffer.Write(p)
	if b.buffer.Len() >= b.sizeLimit {
		b.emitLocked(b.buffer.Len())
	}
	return n, nil
}

// Flush hands on every complete line buffered so far.
func (b *LineBatcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.emitLocked(bytes.LastIndexByte(b.buffer.Bytes(), '\n') + 1)
}

// Close stops the background flusher and hands on everything still buffered.
func (b *LineBatcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.stopCh)
	b.emitLocked(b.buffer.Len())
	return nil
}

func (b *LineBatcher) run() {
	for {
		select {
		case <-b.ticker.C:
			b.Flush()
		case <-b.stopCh:
			b.ticker.Stop()
			return
		}
	}
}

// emitLocked hands on the first n buffered bytes. Callers hold mu.
func (b *LineBatcher) emitLocked(n int) {
	if n <= 0 {
		return
	}
	data := bytes.Clone(b.buffer.Next(n))
	if b.onFlush != nil {
		b.onFlush(data)
	}
}
