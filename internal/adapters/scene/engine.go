// Package scene implements the preview scene engine as an in-memory scene graph.
// It keeps everything a rendering backend needs (models, camera, grid, surface) and is
// what the terminal renderers display.
package scene

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"cogentcore.org/core/math32"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
)

const (
	// frameDistance is the camera distance as a multiple of the largest scene extent.
	frameDistance = 2.5
	// minFrameDistance skips framing scenes that are effectively a point.
	minFrameDistance = 1e-4
	// minCameraCoord keeps the camera out of tiny scenes.
	minCameraCoord = 2
)

// Camera is a look-at camera.
type Camera struct {
	Position math32.Vector3
	Target   math32.Vector3
}

// DefaultCamera is the camera of a new engine.
func DefaultCamera() Camera {
	return Camera{Position: math32.Vec3(2, 2, 2)}
}

// Factory implements ports.EngineFactory. It becomes ready once Init has run.
type Factory struct {
	ready   atomic.Bool
	mu      sync.Mutex
	engines []*Engine
}

// NewFactory creates a Factory that is not ready yet.
func NewFactory() *Factory {
	return &Factory{}
}

// Init brings the backend up. It is safe to call more than once.
func (f *Factory) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.ready.Store(true)
	return nil
}

// Ready reports whether New can be called.
func (f *Factory) Ready() bool {
	return f.ready.Load()
}

// New creates an engine for a surface of the given size.
func (f *Factory) New(size domain.Size) (ports.Engine, error) {
	if !f.Ready() {
		return nil, domain.ErrEngineNotReady
	}
	e := &Engine{
		factory: f,
		size:    size,
		visible: true,
		camera:  DefaultCamera(),
		models:  make(map[*Model]struct{}),
	}
	f.mu.Lock()
	f.engines = append(f.engines, e)
	f.mu.Unlock()
	return e, nil
}

// Engines returns the engines that have not been released.
func (f *Factory) Engines() []*Engine {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.engines)
}

func (f *Factory) remove(e *Engine) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.engines = slices.DeleteFunc(f.engines, func(x *Engine) bool { return x == e })
}

// Engine implements ports.Engine.
type Engine struct {
	factory *Factory

	mu       sync.Mutex
	size     domain.Size
	visible  bool
	grid     domain.GridSpec
	camera   Camera
	models   map[*Model]struct{}
	released bool
}

// Add places a decoded asset into the scene.
func (e *Engine) Add(asset domain.Asset) (ports.Model, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.released {
		return nil, domain.ErrEngineReleased
	}
	m := &Model{engine: e, asset: asset, transform: domain.Identity()}
	e.models[m] = struct{}{}
	return m, nil
}

// Frame points the camera at the bounds of every model.
func (e *Engine) Frame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	bounds := math32.B3Empty()
	for m := range e.models {
		if b := m.worldBounds(); !b.IsEmpty() {
			bounds.ExpandByBox(b)
		}
	}
	if bounds.IsEmpty() {
		return
	}

	center := bounds.Center()
	size := bounds.Size()
	d := max(size.X, size.Y, size.Z) * frameDistance
	if d < minFrameDistance {
		return
	}
	e.camera = Camera{
		Target: center,
		Position: math32.Vec3(
			max(center.X+d, minCameraCoord),
			max(center.Y+d, minCameraCoord),
			max(center.Z+d, minCameraCoord),
		),
	}
}

// Resize changes the surface size.
func (e *Engine) Resize(size domain.Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.size = size
}

// Size returns the surface size.
func (e *Engine) Size() domain.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

// SetVisible shows or hides the surface.
func (e *Engine) SetVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = visible
}

// Visible reports whether the surface is shown.
func (e *Engine) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// SetGrid replaces the floor grid.
func (e *Engine) SetGrid(grid domain.GridSpec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid = grid
}

// Grid returns the floor grid.
func (e *Engine) Grid() domain.GridSpec {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid
}

// Camera returns the current camera.
func (e *Engine) Camera() Camera {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.camera
}

// Models returns the models in the scene in no particular order.
func (e *Engine) Models() []*Model {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Model, 0, len(e.models))
	for m := range e.models {
		out = append(out, m)
	}
	return out
}

// Release frees the engine and every model still in it.
func (e *Engine) Release() {
	e.mu.Lock()
	if e.released {
		e.mu.Unlock()
		return
	}
	e.released = true
	clear(e.models)
	e.mu.Unlock()
	e.factory.remove(e)
}

// Model implements ports.Model.
type Model struct {
	engine *Engine
	asset  domain.Asset

	mu        sync.Mutex
	transform math32.Matrix4
	material  *domain.MaterialOverride
	held      atomic.Bool
}

// Asset returns the asset the model was created from.
func (m *Model) Asset() domain.Asset {
	return m.asset
}

// SetTransform sets the model's world matrix.
func (m *Model) SetTransform(t math32.Matrix4) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transform = t
}

// Transform returns the model's world matrix.
func (m *Model) Transform() math32.Matrix4 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transform
}

// SetMaterial overrides the model's materials. Nil restores the asset's own.
func (m *Model) SetMaterial(mat *domain.MaterialOverride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mat == nil {
		m.material = nil
		return
	}
	cp := *mat
	m.material = &cp
}

// Material returns the material override, or nil.
func (m *Model) Material() *domain.MaterialOverride {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.material
}

// Attach hands the model to the manipulation gizmo. The synchronizer stops moving it.
func (m *Model) Attach() {
	m.held.Store(true)
}

// Detach takes the model away from the gizmo.
func (m *Model) Detach() {
	m.held.Store(false)
}

// Manipulated reports whether the model is attached to the gizmo.
func (m *Model) Manipulated() bool {
	return m.held.Load()
}

// Release removes the model from its scene.
func (m *Model) Release() {
	m.engine.mu.Lock()
	defer m.engine.mu.Unlock()
	delete(m.engine.models, m)
}

func (m *Model) worldBounds() math32.Box3 {
	if m.asset.Bounds.IsEmpty() {
		return m.asset.Bounds
	}
	t := m.Transform()
	return m.asset.Bounds.MulMatrix4(&t)
}
