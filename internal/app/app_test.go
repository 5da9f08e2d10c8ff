package app_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/preview/internal/adapters/scene"
	"go.trai.ch/preview/internal/adapters/watcher"
	"go.trai.ch/preview/internal/app"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const triangle = `{
  "asset": {"version": "2.0"},
  "accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 1]}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}]
}`

const graphTemplate = `
nodes:
  - id: 1
    class: MeshLoader
    widgets:
      - {name: mesh_file, value: MESH}
  - id: 2
    class: MeshTransform
    inputs:
      - {name: mesh_id, link: 7}
    widgets:
      - {name: pos_x, value: 3}
links:
  - {id: 7, origin: 1, target: 2}
`

// syncBuffer is a bytes.Buffer safe for the renderer and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixture struct {
	app       *app.App
	graphPath string
	cacheDir  string
	stderr    *syncBuffer
	log       *mocks.MockLogger
}

func writeGraph(t *testing.T, path, mesh string) {
	t.Helper()
	content := strings.ReplaceAll(graphTemplate, "MESH", mesh)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("ETag", `"triangle"`)
		_, _ = w.Write([]byte(triangle))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.AssetServer = srv.URL
	cfg.CacheDir = filepath.Join(dir, "cache")
	cfg.PollInterval = 10 * time.Millisecond

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	stderr := &syncBuffer{}
	a := app.New(loader, w, scene.NewFactory(), log).
		WithOutput(&syncBuffer{}, stderr).
		WithDebounce(10 * time.Millisecond).
		WithTeaOptions(
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
			tea.WithoutRenderer(),
		)

	graphPath := filepath.Join(dir, "graph.yaml")
	writeGraph(t, graphPath, "part.glb")

	return &fixture{app: a, graphPath: graphPath, cacheDir: cfg.CacheDir, stderr: stderr, log: log}
}

func (f *fixture) watch(t *testing.T, opts app.WatchOptions) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- f.app.Watch(ctx, f.graphPath, opts)
	}()
	return cancel, done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestApp_Watch_Linear(t *testing.T) {
	f := newFixture(t)
	cancel, done := f.watch(t, app.WatchOptions{OutputMode: "linear"})

	assert.Eventually(t, func() bool {
		return strings.Contains(f.stderr.String(), "[2] 1 target(s): 1 live, 0 loading, 0 failed")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	waitDone(t, done)

	out := f.stderr.String()
	assert.Contains(t, out, "Previewing 1 node(s): 2")
	assert.Contains(t, out, "[2/live_0] Loading...")

	entries, err := os.ReadDir(f.cacheDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "downloaded asset is cached with its validators")
}

func TestApp_Watch_ReloadsChangedGraph(t *testing.T) {
	f := newFixture(t)
	cancel, done := f.watch(t, app.WatchOptions{OutputMode: "linear", Nodes: []string{"2"}})

	assert.Eventually(t, func() bool {
		return strings.Contains(f.stderr.String(), "1 live")
	}, 5*time.Second, 10*time.Millisecond)

	writeGraph(t, f.graphPath, "other.glb")

	assert.Eventually(t, func() bool {
		return strings.Count(f.stderr.String(), "[2/live_0] Loading...") >= 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	waitDone(t, done)
}

func TestApp_Watch_TUI(t *testing.T) {
	f := newFixture(t)
	cancel, done := f.watch(t, app.WatchOptions{OutputMode: "tui", Interval: 5 * time.Millisecond})

	time.Sleep(50 * time.Millisecond)
	cancel()
	waitDone(t, done)
}

func TestApp_Watch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		graph   string
		opts    app.WatchOptions
		wantErr error
	}{
		{
			name:    "unknown node",
			opts:    app.WatchOptions{OutputMode: "linear", Nodes: []string{"99"}},
			wantErr: domain.ErrNodeNotFound,
		},
		{
			name:    "only sources",
			graph:   "nodes:\n  - {id: 1, class: MeshLoader}\n",
			opts:    app.WatchOptions{OutputMode: "linear"},
			wantErr: domain.ErrNoViewedNodes,
		},
		{
			name:    "invalid output mode",
			opts:    app.WatchOptions{OutputMode: "fancy"},
			wantErr: domain.ErrInvalidOutputMode,
		},
		{
			name:    "malformed graph",
			graph:   "nodes: [",
			opts:    app.WatchOptions{OutputMode: "linear"},
			wantErr: domain.ErrGraphParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.graph != "" {
				require.NoError(t, os.WriteFile(f.graphPath, []byte(tt.graph), domain.FilePerm))
			}

			err := f.app.Watch(t.Context(), f.graphPath, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr.Error())
		})
	}
}

func TestApp_Watch_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Config{}, domain.ErrConfigParseFailed)

	a := app.New(loader, mocks.NewMockWatcher(ctrl), scene.NewFactory(), mocks.NewMockLogger(ctrl))
	err := a.Watch(t.Context(), "graph.yaml", app.WatchOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Trace(t *testing.T) {
	f := newFixture(t)

	objs, err := f.app.Trace(t.Context(), f.graphPath, app.TraceOptions{Node: "2"})
	require.NoError(t, err)

	require.Len(t, objs, 1)
	assert.Equal(t, "live_0", objs[0].Key)
	assert.Contains(t, objs[0].SourceURL, "/view?filename=part.glb&type=input")
	assert.InDelta(t, 3, domain.Translation(&objs[0].Transform).X, 1e-6)
}

func TestApp_Trace_RestrictedToSlot(t *testing.T) {
	f := newFixture(t)

	objs, err := f.app.Trace(t.Context(), f.graphPath, app.TraceOptions{Node: "2", Input: "mesh_id"})
	require.NoError(t, err)

	require.Len(t, objs, 1)
	assert.Equal(t, "mesh_id_0", objs[0].Key)
}

func TestApp_Trace_UnknownNode(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Trace(t.Context(), f.graphPath, app.TraceOptions{Node: "42"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNodeNotFound.Error())
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.cacheDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(f.cacheDir, "a.glb"), []byte("x"), domain.FilePerm))

	f.log.EXPECT().Info(gomock.Any()).Times(2)
	require.NoError(t, f.app.Clean(t.Context()))

	_, err := os.Stat(f.cacheDir)
	assert.True(t, os.IsNotExist(err))
}

func TestReportExecutionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		log.EXPECT().Warn("node 5 reported an execution error: no meshes registered"),
		log.EXPECT().Warn("node 5 reported an execution error: export failed"),
		log.EXPECT().Warn("node 5 reported an execution error: no meshes registered"),
	)

	hook := app.ReportExecutionErrors(log)
	node := &domain.Node{ID: "5"}
	failed := func(msg string) domain.ExecutionResult {
		return domain.ExecutionResult{Stats: map[string]any{"error": msg}}
	}

	hook(node, failed("no meshes registered"))
	hook(node, failed("no meshes registered"))
	hook(node, failed("export failed"))
	hook(node, domain.ExecutionResult{Stats: map[string]any{"vertices": 3}})
	hook(node, failed("no meshes registered"))
	hook(&domain.Node{ID: "6"}, domain.ExecutionResult{})
}
