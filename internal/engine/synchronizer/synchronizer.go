// Package synchronizer keeps a preview scene in step with the graph it shows.
package synchronizer

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
	"go.trai.ch/preview/internal/engine/tracer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	widgetShowPreview = "show_preview"
	settingShowStats  = "show_stats"
	settingUpAxis     = "up_direction"
)

// Options configures a Synchronizer.
type Options struct {
	Interval           time.Duration
	ResizeThreshold    int
	FramePolicy        domain.FramePolicy
	MaxConcurrentLoads int
	CaseInsensitive    bool
	// Surface is the engine size used until the viewport reports one.
	Surface domain.Size
}

// OptionsFromConfig extracts the synchronizer settings from the preview configuration.
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		Interval:           cfg.PollInterval,
		ResizeThreshold:    cfg.ResizeThreshold,
		FramePolicy:        cfg.FramePolicy,
		MaxConcurrentLoads: cfg.MaxConcurrentLoads,
		CaseInsensitive:    cfg.CaseInsensitiveWidgets,
		Surface:            cfg.Surface,
	}
}

// Deps are the collaborators of a Synchronizer. Viewport and Observer are optional.
type Deps struct {
	Graph    ports.GraphSource
	Tracer   *tracer.Tracer
	Loader   ports.AssetLoader
	Factory  ports.EngineFactory
	Viewport ports.Viewport
	Spans    ports.Tracer
	Logger   ports.Logger
	Observer ports.SceneObserver
}

type entry struct {
	state domain.EntryState
	url   string
	model ports.Model
	// gen identifies the load an entry waits for.
	gen uint64
	// reported is the URL whose failure was last logged.
	reported string
}

type loadResult struct {
	key   string
	gen   uint64
	asset domain.Asset
	err   error
}

// Synchronizer drives the scene of one viewed node. Tick and Run must be called from a
// single goroutine; loads run on their own goroutines and report back through a channel.
type Synchronizer struct {
	viewer string
	deps   Deps
	opts   Options

	engine  ports.Engine
	visible bool
	size    domain.Size
	grid    domain.GridSpec
	stats   map[string]any
	framed  bool

	// frame is set when a completed load asks for the camera to be framed. Framing waits
	// until the tick has placed the models.
	frame bool

	entries map[string]*entry
	results chan loadResult
	loads   *errgroup.Group
	seq     uint64
	targets int
}

// New creates a Synchronizer for the node with the given id.
func New(viewer string, deps Deps, opts Options) *Synchronizer {
	if opts.Interval <= 0 {
		opts.Interval = domain.DefaultPollInterval
	}
	if opts.MaxConcurrentLoads <= 0 {
		opts.MaxConcurrentLoads = domain.DefaultMaxConcurrentLoads
	}
	if opts.Surface == (domain.Size{}) {
		opts.Surface = domain.Size{Width: domain.DefaultSurfaceWidth, Height: domain.DefaultSurfaceHeight}
	}
	loads := new(errgroup.Group)
	loads.SetLimit(opts.MaxConcurrentLoads)

	return &Synchronizer{
		viewer:  viewer,
		deps:    deps,
		opts:    opts,
		entries: make(map[string]*entry),
		results: make(chan loadResult, opts.MaxConcurrentLoads),
		loads:   loads,
	}
}

// Viewer returns the id of the node this synchronizer shows.
func (s *Synchronizer) Viewer() string {
	return s.viewer
}

// Run ticks until ctx is done, then waits for in-flight loads and releases the scene.
func (s *Synchronizer) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()
	defer s.Close()

	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one synchronization pass.
func (s *Synchronizer) Tick(ctx context.Context) {
	s.drain()
	defer s.report()

	g := s.deps.Graph.Graph()
	node, ok := g.Node(s.viewer)
	if !ok || !s.showPreview(node) {
		s.hide()
		return
	}
	s.stats = nil
	if s.showStats(node) {
		s.stats = node.Stats()
	}

	if s.engine == nil {
		s.construct()
		return
	}
	if !s.visible {
		s.engine.SetVisible(true)
		s.visible = true
	}

	s.syncSize()
	s.syncGrid(node)

	targets := s.resolveTargets(g, node)
	s.targets = len(targets)
	s.dispatch(ctx, targets)
	s.apply(targets)
	s.evict(targets)

	if s.frame {
		s.engine.Frame()
		s.frame = false
		s.framed = true
	}
}

// Close waits for in-flight loads and releases every model and the engine.
func (s *Synchronizer) Close() {
	done := make(chan struct{})
	go func() {
		_ = s.loads.Wait()
		close(done)
	}()

	// Loads block on a full results channel, so keep draining until they are all done.
	for waiting := true; waiting; {
		select {
		case <-s.results:
		case <-done:
			waiting = false
		}
	}
	for len(s.results) > 0 {
		<-s.results
	}

	for key, e := range s.entries {
		if e.state == domain.EntryLive {
			e.model.Release()
		}
		delete(s.entries, key)
	}
	if s.engine != nil {
		s.engine.Release()
		s.engine = nil
	}
}

func (s *Synchronizer) showPreview(node *domain.Node) bool {
	w, ok := node.Widget(widgetShowPreview, s.opts.CaseInsensitive)
	if !ok {
		return true
	}
	show, ok := domain.Bool(w.Value)
	return !ok || show
}

// hide hides the surface and releases every model. Loads in flight are left to resolve.
func (s *Synchronizer) hide() {
	if s.engine != nil && s.visible {
		s.engine.SetVisible(false)
	}
	s.visible = false
	s.targets = 0
	s.stats = nil
	s.frame = false
	for key, e := range s.entries {
		if e.state == domain.EntryLoading {
			continue
		}
		if e.state == domain.EntryLive {
			e.model.Release()
		}
		delete(s.entries, key)
	}
}

func (s *Synchronizer) construct() {
	if !s.deps.Factory.Ready() {
		return
	}
	size := s.opts.Surface
	if measured, ok := s.measure(); ok {
		size = measured
	}
	eng, err := s.deps.Factory.New(size)
	if err != nil {
		s.deps.Logger.Error(zerr.With(zerr.Wrap(err, "failed to create scene engine"), "node", s.viewer))
		return
	}
	s.engine = eng
	s.size = size
	s.visible = true
	s.grid = domain.DefaultGrid()
	eng.SetGrid(s.grid)
}

func (s *Synchronizer) measure() (domain.Size, bool) {
	if s.deps.Viewport == nil {
		return domain.Size{}, false
	}
	return s.deps.Viewport.Size()
}

func (s *Synchronizer) syncSize() {
	size, ok := s.measure()
	if !ok {
		return
	}
	if abs(size.Width-s.size.Width) <= s.opts.ResizeThreshold &&
		abs(size.Height-s.size.Height) <= s.opts.ResizeThreshold {
		return
	}
	s.engine.Resize(size)
	s.size = size
}

func (s *Synchronizer) syncGrid(node *domain.Node) {
	grid, ok := domain.GridFromSettings(node.Settings())
	if !ok || grid == s.grid {
		return
	}
	s.engine.SetGrid(grid)
	s.grid = grid
}

// resolveTargets computes this tick's target objects with their identity keys.
func (s *Synchronizer) resolveTargets(g *domain.Graph, node *domain.Node) []domain.SceneObject {
	var out []domain.SceneObject
	if node.Role == domain.RoleAssembler {
		correction := s.upAxis(node).Correction()
		identity := domain.Identity()
		for _, in := range node.MeshSlots() {
			if in.Link == nil {
				continue
			}
			objs := s.deps.Tracer.Trace(g, node, in.Name)
			for i := range objs {
				objs[i].Slot = in.Name
				objs[i].Key = domain.IdentityKey(in.Name, i)
				if correction != identity {
					objs[i].Transform = domain.Premultiply.Compose(&correction, &objs[i].Transform)
				}
			}
			out = append(out, objs...)
		}
	} else {
		out = s.deps.Tracer.Trace(g, node, "")
		for i := range out {
			out[i].Slot = domain.LiveSlot
			out[i].Key = domain.IdentityKey(domain.LiveSlot, i)
		}
	}

	out = slices.DeleteFunc(out, func(o domain.SceneObject) bool { return o.SourceURL == "" })
	if len(out) == 0 {
		if baked := node.LastOutput(); baked != "" {
			obj := domain.NewSceneObject(baked)
			obj.Slot = domain.LiveSlot
			obj.Key = domain.IdentityKey(domain.LiveSlot, 0)
			out = append(out, obj)
		}
	}
	return out
}

// setting reads a value from the node's execution settings, falling back to its widget.
func (s *Synchronizer) setting(node *domain.Node, name string) (any, bool) {
	if v, ok := node.Setting(name); ok {
		return v, true
	}
	w, ok := node.Widget(name, s.opts.CaseInsensitive)
	return w.Value, ok
}

func (s *Synchronizer) showStats(node *domain.Node) bool {
	raw, ok := s.setting(node, settingShowStats)
	if !ok {
		return true
	}
	show, ok := domain.Bool(raw)
	return !ok || show
}

func (s *Synchronizer) upAxis(node *domain.Node) domain.UpAxis {
	raw, ok := s.setting(node, settingUpAxis)
	if !ok {
		return domain.UpY
	}
	name, _ := domain.String(raw)
	axis, err := domain.ParseUpAxis(name)
	if err != nil {
		return domain.UpY
	}
	return axis
}

// dispatch issues a load for every target that is neither loading nor live at its URL.
func (s *Synchronizer) dispatch(ctx context.Context, targets []domain.SceneObject) {
	for _, obj := range targets {
		e, ok := s.entries[obj.Key]
		if ok && (e.state == domain.EntryLoading ||
			(e.state == domain.EntryLive && e.url == obj.SourceURL)) {
			continue
		}

		gen := s.seq + 1
		key, url := obj.Key, obj.SourceURL
		started := s.loads.TryGo(func() error {
			s.load(ctx, key, url, gen)
			return nil
		})
		if !started {
			// Every load slot is busy. The key is picked up again next tick.
			continue
		}
		s.seq = gen

		if !ok {
			e = &entry{}
			s.entries[key] = e
		}
		if e.state == domain.EntryLive {
			e.model.Release()
			e.model = nil
		}
		e.state = domain.EntryLoading
		e.url = url
		e.gen = gen
	}
}

func (s *Synchronizer) load(ctx context.Context, key, url string, gen uint64) {
	ctx, span := s.deps.Spans.Start(ctx, s.spanName(key),
		ports.WithAttribute("viewer", s.viewer),
		ports.WithAttribute("url", url),
	)
	asset, err := s.deps.Loader.Load(ctx, url)
	if err != nil {
		span.RecordError(err)
	} else {
		span.SetAttribute("meshes", asset.Meshes)
		span.SetAttribute("bytes", asset.Size)
	}
	span.End()

	s.results <- loadResult{key: key, gen: gen, asset: asset, err: err}
}

func (s *Synchronizer) spanName(key string) string {
	return fmt.Sprintf("%s/%s", s.viewer, key)
}

// drain applies every load that completed since the previous tick.
func (s *Synchronizer) drain() {
	for {
		select {
		case r := <-s.results:
			s.complete(r)
		default:
			return
		}
	}
}

func (s *Synchronizer) complete(r loadResult) {
	e, ok := s.entries[r.key]
	if !ok || e.gen != r.gen || e.state != domain.EntryLoading {
		return
	}

	if r.err == nil && s.engine == nil {
		r.err = domain.ErrEngineReleased
	}
	var model ports.Model
	if r.err == nil {
		model, r.err = s.engine.Add(r.asset)
	}
	if r.err != nil {
		e.state = domain.EntryAbsent
		if e.reported != e.url {
			e.reported = e.url
			err := zerr.With(zerr.Wrap(r.err, "failed to load model"), "url", e.url)
			s.deps.Logger.Error(zerr.With(err, "key", r.key))
		}
		return
	}

	wasEmpty := s.live() == 0
	e.state = domain.EntryLive
	e.model = model
	e.reported = ""

	switch s.opts.FramePolicy {
	case domain.FrameOnPopulate:
		s.frame = s.frame || wasEmpty
	default:
		s.frame = s.frame || !s.framed
	}
}

// apply pushes transforms and materials onto live models not held by the gizmo.
func (s *Synchronizer) apply(targets []domain.SceneObject) {
	for _, obj := range targets {
		e, ok := s.entries[obj.Key]
		if !ok || e.state != domain.EntryLive || e.url != obj.SourceURL {
			continue
		}
		if e.model.Manipulated() {
			continue
		}
		e.model.SetTransform(obj.Transform)
		if obj.Material != nil {
			e.model.SetMaterial(obj.Material)
		}
	}
}

// evict drops every resolved entry whose key is not a target.
func (s *Synchronizer) evict(targets []domain.SceneObject) {
	active := make(map[string]struct{}, len(targets))
	for _, obj := range targets {
		active[obj.Key] = struct{}{}
	}
	for key, e := range s.entries {
		if _, keep := active[key]; keep || e.state == domain.EntryLoading {
			continue
		}
		if e.state == domain.EntryLive {
			e.model.Release()
		}
		delete(s.entries, key)
	}
}

func (s *Synchronizer) live() int {
	n := 0
	for _, e := range s.entries {
		if e.state == domain.EntryLive {
			n++
		}
	}
	return n
}

// Status returns the current state of the preview.
func (s *Synchronizer) Status() domain.SceneStatus {
	status := domain.SceneStatus{
		Viewer:  s.viewer,
		Ready:   s.engine != nil,
		Visible: s.visible,
		Size:    s.size,
		Grid:    s.grid,
		Targets: s.targets,
		Stats:   s.stats,
		Entries: make([]domain.EntryStatus, 0, len(s.entries)),
	}
	for key, e := range s.entries {
		status.Entries = append(status.Entries, domain.EntryStatus{Key: key, URL: e.url, State: e.state})
	}
	slices.SortFunc(status.Entries, func(a, b domain.EntryStatus) int {
		return strings.Compare(a.Key, b.Key)
	})
	return status
}

func (s *Synchronizer) report() {
	if s.deps.Observer == nil {
		return
	}
	s.deps.Observer.OnSceneUpdate(s.Status())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
