package ports

import (
	"cogentcore.org/core/math32"
	"go.trai.ch/preview/internal/core/domain"
)

// EngineFactory constructs scene engines once the rendering backend is available.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type EngineFactory interface {
	// Ready reports whether New can be called.
	Ready() bool
	// New creates a scene engine for a surface of the given size.
	New(size domain.Size) (Engine, error)
}

// Engine is the 3D scene behind one preview surface.
type Engine interface {
	// Add places a decoded asset into the scene.
	Add(asset domain.Asset) (Model, error)
	// Frame points the camera at everything in the scene.
	Frame()
	// Resize changes the surface size.
	Resize(size domain.Size)
	// Size returns the current surface size.
	Size() domain.Size
	// SetVisible shows or hides the surface.
	SetVisible(visible bool)
	// SetGrid replaces the floor grid.
	SetGrid(grid domain.GridSpec)
	// Release frees the engine and every model still in it.
	Release()
}

// Model is a loaded asset placed in a scene.
type Model interface {
	// SetTransform sets the model's world matrix.
	SetTransform(transform math32.Matrix4)
	// SetMaterial overrides every mesh material. Nil restores the asset's own materials.
	SetMaterial(mat *domain.MaterialOverride)
	// Manipulated reports whether the model is attached to the manipulation gizmo.
	Manipulated() bool
	// Release removes the model from its scene.
	Release()
}

// Viewport reports the size of the area a preview surface is shown in.
type Viewport interface {
	// Size returns the viewport size. It returns false while the size is unknown.
	Size() (domain.Size, bool)
}
