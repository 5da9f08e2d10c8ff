// Package app implements the application layer for preview.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/preview/internal/adapters/assetcache"
	"go.trai.ch/preview/internal/adapters/detector"
	"go.trai.ch/preview/internal/adapters/linear"
	"go.trai.ch/preview/internal/adapters/mesh"
	"go.trai.ch/preview/internal/adapters/telemetry"
	"go.trai.ch/preview/internal/adapters/tui"
	"go.trai.ch/preview/internal/adapters/watcher"
	"go.trai.ch/preview/internal/adapters/workflow"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
	"go.trai.ch/preview/internal/engine/synchronizer"
	"go.trai.ch/preview/internal/engine/tracer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// tracerName is the instrumentation scope of load spans.
const tracerName = "preview"

// Backend is the engine factory the app brings up before any preview starts.
type Backend interface {
	ports.EngineFactory
	// Init initializes the rendering backend.
	Init(ctx context.Context) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	watcher      ports.Watcher
	backend      Backend
	logger       ports.Logger
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
	stderr       io.Writer
	debounce     time.Duration
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, w ports.Watcher, backend Backend, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		watcher:      w,
		backend:      backend,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects renderer output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDebounce sets how long graph file changes are collected before a reload.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Nodes are the ids of the nodes to preview. Empty selects every node that is not a source.
	Nodes []string
	// Interval overrides the configured poll interval when positive.
	Interval   time.Duration
	OutputMode string
}

// Watch previews the graph snapshot at graphPath until ctx is done or the TUI is closed.
// The file is reloaded whenever it changes.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Watch(ctx context.Context, graphPath string, opts WatchOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if opts.Interval > 0 {
		cfg.PollInterval = opts.Interval
	}

	mode, err := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if err != nil {
		return err
	}

	store := newGraphStore(cfg, a.logger)
	store.OnExecuted(ReportExecutionErrors(a.logger))
	if _, err := store.Load(graphPath); err != nil {
		return zerr.Wrap(err, "failed to load graph")
	}
	viewers, err := selectViewers(store.Graph(), opts.Nodes)
	if err != nil {
		return err
	}

	if err := a.backend.Init(ctx); err != nil {
		return zerr.Wrap(err, "failed to initialize renderer")
	}

	renderer, viewport := a.newRenderer(mode)

	provider := telemetry.NewProvider(telemetry.NewBridge(renderer))
	defer func() {
		_ = provider.Shutdown(context.WithoutCancel(ctx))
	}()
	spans := telemetry.NewOTelTracer(provider, tracerName).WithSink(renderer)

	deps := synchronizer.Deps{
		Graph:    store,
		Tracer:   tracer.New(tracer.OptionsFromConfig(cfg)),
		Loader:   mesh.NewLoader(cfg.LoadTimeout, assetcache.NewStore(cfg.CacheDir), a.logger),
		Factory:  a.backend,
		Viewport: viewport,
		Spans:    spans,
		Logger:   a.logger,
		Observer: renderer,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Closing the TUI ends the whole preview.
	g.Go(func() error {
		defer cancel()
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		<-ctx.Done()
		return renderer.Stop()
	})

	g.Go(func() error {
		return a.watchGraph(ctx, store, graphPath)
	})

	renderer.OnViewers(viewers)
	for _, viewer := range viewers {
		s := synchronizer.New(viewer, deps, synchronizer.OptionsFromConfig(cfg))
		g.Go(func() error {
			return s.Run(ctx)
		})
	}

	return g.Wait()
}

// watchGraph reloads the graph store whenever the snapshot file changes.
func (a *App) watchGraph(ctx context.Context, store ports.GraphStore, graphPath string) error {
	if err := a.watcher.Start(ctx, graphPath); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	reload := watcher.NewDebouncer(a.debounce, func(_ []string) {
		if _, err := store.Load(graphPath); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to reload graph"))
		}
	})
	for event := range a.watcher.Events() {
		if event.Operation == ports.OpRemove {
			continue
		}
		reload.Add(event.Path)
	}
	return nil
}

func (a *App) newRenderer(mode detector.OutputMode) (ports.Renderer, ports.Viewport) {
	if mode == detector.ModeTUI {
		r := tui.NewRenderer(tui.NewModel(a.stderr), a.teaOptions...)
		return r, r.Viewport()
	}
	return linear.NewRenderer(a.stdout, a.stderr), nil
}

// TraceOptions configuration for the Trace method.
type TraceOptions struct {
	Node string
	// Input restricts the trace to one input slot.
	Input string
}

// Trace resolves the scene objects a node would show in the graph snapshot at graphPath.
// Objects are keyed like the synchronizer keys them.
func (a *App) Trace(ctx context.Context, graphPath string, opts TraceOptions) ([]domain.SceneObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	store := newGraphStore(cfg, a.logger)
	if _, err := store.Load(graphPath); err != nil {
		return nil, zerr.Wrap(err, "failed to load graph")
	}
	g := store.Graph()
	node, ok := g.Node(opts.Node)
	if !ok {
		return nil, zerr.With(domain.ErrNodeNotFound, "node", opts.Node)
	}

	objs := tracer.New(tracer.OptionsFromConfig(cfg)).Trace(g, node, opts.Input)
	slot := opts.Input
	if slot == "" {
		slot = domain.LiveSlot
	}
	for i := range objs {
		objs[i].Slot = slot
		objs[i].Key = domain.IdentityKey(slot, i)
	}
	return objs, nil
}

// Clean removes the downloaded asset cache.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	store := assetcache.NewStore(cfg.CacheDir)
	a.logger.Info(fmt.Sprintf("removing asset cache %s...", store.Root()))
	if err := store.Clear(); err != nil {
		return zerr.Wrap(err, "failed to remove asset cache")
	}
	a.logger.Info("removed asset cache")
	return nil
}

func (a *App) loadConfig() (domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to get working directory")
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func newGraphStore(cfg domain.Config, log ports.Logger) *workflow.Store {
	return workflow.NewStore(log, workflow.Options{
		AssetServer: cfg.AssetServer,
		MaxSlots:    cfg.MaxSlots,
		Roles:       cfg.Roles,
	})
}

// statsError is the statistics key a node reports a failed execution under.
const statsError = "error"

// ReportExecutionErrors returns a hook that warns about the execution error a node reports
// in its statistics. Each distinct error is reported once per node, however often the
// snapshot is reloaded.
func ReportExecutionErrors(log ports.Logger) domain.ExecutedHook {
	reported := make(map[string]string)
	return func(n *domain.Node, result domain.ExecutionResult) {
		msg, _ := domain.String(result.Stats[statsError])
		if msg == "" {
			delete(reported, n.ID)
			return
		}
		if reported[n.ID] == msg {
			return
		}
		reported[n.ID] = msg
		log.Warn(fmt.Sprintf("node %s reported an execution error: %s", n.ID, msg))
	}
}

// selectViewers validates the requested node ids, or picks every node that is not a source.
func selectViewers(g *domain.Graph, requested []string) ([]string, error) {
	if len(requested) > 0 {
		for _, id := range requested {
			if _, ok := g.Node(id); !ok {
				return nil, zerr.With(domain.ErrNodeNotFound, "node", id)
			}
		}
		return requested, nil
	}

	var viewers []string
	for n := range g.Nodes() {
		if n.Role != domain.RoleSource {
			viewers = append(viewers, n.ID)
		}
	}
	if len(viewers) == 0 {
		return nil, domain.ErrNoViewedNodes
	}
	return viewers, nil
}
