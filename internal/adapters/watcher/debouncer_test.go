package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/preview/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/ws/graph.yaml")
		d.Add("/ws/graph.yaml")
		d.Add("/ws/b.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/ws/b.yaml", "/ws/graph.yaml"}}, calls)
	})
}

func TestDebouncer_TimerRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { calls++ })

		d.Add("/ws/graph.yaml")
		time.Sleep(80 * time.Millisecond)
		d.Add("/ws/graph.yaml")
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 0, calls)

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/ws/a.yaml")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Add("/ws/b.yaml")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/ws/a.yaml"}, {"/ws/b.yaml"}}, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Flush()
		assert.Empty(t, calls, "flush with nothing pending")

		d.Add("/ws/graph.yaml")
		d.Flush()
		assert.Equal(t, [][]string{{"/ws/graph.yaml"}}, calls)

		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Len(t, calls, 1, "the stopped timer must not fire again")
	})
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		d := watcher.NewDebouncer(10*time.Millisecond, func([]string) { calls++ })

		d.Add("/ws/graph.yaml")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()

		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/ws/graph.yaml")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Add("/ws/graph.yaml")
		d.Flush()
	})
}
