// Package tracer resolves the scene objects a node shows by walking its upstream graph.
package tracer

import (
	"cogentcore.org/core/math32"
	"go.trai.ch/preview/internal/core/domain"
)

// Source widgets are consulted in this order for a node-local mesh path.
var sourceWidgets = []string{"mesh_file", "mesh_path"}

const (
	widgetPosX    = "pos_x"
	widgetPosY    = "pos_y"
	widgetPosZ    = "pos_z"
	widgetRotX    = "rot_x"
	widgetRotY    = "rot_y"
	widgetRotZ    = "rot_z"
	widgetScale   = "uniform_scale"
	widgetRed     = "base_color_r"
	widgetGreen   = "base_color_g"
	widgetBlue    = "base_color_b"
	widgetMetal   = "metallic"
	widgetRough   = "roughness"
	defaultScale  = 1
	defaultOffset = 0
)

// Options configures a Tracer.
type Options struct {
	AssetServer     string
	MaxDepth        int
	Order           domain.ComposeOrder
	CaseInsensitive bool
	Material        domain.MaterialDefaults
}

// OptionsFromConfig extracts the tracer settings from the preview configuration.
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		AssetServer:     cfg.AssetServer,
		MaxDepth:        cfg.MaxDepth,
		Order:           cfg.ComposeOrder,
		CaseInsensitive: cfg.CaseInsensitiveWidgets,
		Material:        cfg.Material,
	}
}

// Tracer walks node graphs. It holds no per-trace state and is safe for concurrent use.
type Tracer struct {
	opts Options
}

// New creates a Tracer.
func New(opts Options) *Tracer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = domain.DefaultMaxDepth
	}
	if opts.Material == (domain.MaterialDefaults{}) {
		opts.Material = domain.DefaultConfig().Material
	}
	return &Tracer{opts: opts}
}

// Trace returns the objects reachable from root. When slot is set, only that input is
// followed and root's own source is not consulted.
func (t *Tracer) Trace(g *domain.Graph, root *domain.Node, slot string) []domain.SceneObject {
	visited := make(map[string]struct{})
	return t.trace(g, root, slot, 0, visited)
}

func (t *Tracer) trace(
	g *domain.Graph,
	n *domain.Node,
	slot string,
	depth int,
	visited map[string]struct{},
) []domain.SceneObject {
	if n == nil || depth > t.opts.MaxDepth {
		return nil
	}
	if _, seen := visited[n.ID]; seen {
		return nil
	}
	visited[n.ID] = struct{}{}

	var local string
	if slot == "" {
		local = t.LocalSource(n)
	}

	var objs []domain.SceneObject
	for _, in := range n.Inputs {
		if !follows(in.Name, slot) {
			continue
		}
		up, ok := g.Upstream(in)
		if !ok {
			continue
		}
		objs = append(objs, t.trace(g, up, "", depth+1, visited)...)
	}

	if len(objs) == 0 && local != "" {
		objs = []domain.SceneObject{domain.NewSceneObject(local)}
	}

	switch n.Role {
	case domain.RoleTransform:
		t.applyTransform(n, objs)
	case domain.RoleMaterial:
		t.applyMaterial(n, objs)
	}
	return objs
}

func follows(name, slot string) bool {
	if slot != "" {
		return name == slot
	}
	return domain.IsMeshSlot(name)
}

// LocalSource returns the asset URL a node names by itself: its last produced output,
// else the first mesh path widget.
func (t *Tracer) LocalSource(n *domain.Node) string {
	if url := n.LastOutput(); url != "" {
		return url
	}
	for _, name := range sourceWidgets {
		w, ok := n.Widget(name, t.opts.CaseInsensitive)
		if !ok {
			continue
		}
		path, ok := domain.String(w.Value)
		if !ok || !domain.IsMeshPath(path) {
			continue
		}
		return domain.AssetURL(t.opts.AssetServer, path)
	}
	return ""
}

// LocalTransform returns the matrix a transform node applies.
func (t *Tracer) LocalTransform(n *domain.Node) math32.Matrix4 {
	f := func(name string, def float32) float32 {
		return n.FloatWidget(name, t.opts.CaseInsensitive, def)
	}
	pos := math32.Vec3(f(widgetPosX, defaultOffset), f(widgetPosY, defaultOffset), f(widgetPosZ, defaultOffset))
	rot := math32.Vec3(f(widgetRotX, defaultOffset), f(widgetRotY, defaultOffset), f(widgetRotZ, defaultOffset))
	return domain.LocalTransform(pos, rot, f(widgetScale, defaultScale))
}

func (t *Tracer) applyTransform(n *domain.Node, objs []domain.SceneObject) {
	if len(objs) == 0 {
		return
	}
	local := t.LocalTransform(n)
	for i := range objs {
		objs[i].Transform = t.opts.Order.Compose(&local, &objs[i].Transform)
	}
}

// Material returns the override a material node applies. It returns nil when the
// node has no red channel.
func (t *Tracer) Material(n *domain.Node) *domain.MaterialOverride {
	w, ok := n.Widget(widgetRed, t.opts.CaseInsensitive)
	if !ok {
		return nil
	}
	red, ok := domain.Float(w.Value)
	if !ok {
		return nil
	}
	d := t.opts.Material
	return &domain.MaterialOverride{
		Color: [3]float32{
			red,
			n.FloatWidget(widgetGreen, t.opts.CaseInsensitive, d.Green),
			n.FloatWidget(widgetBlue, t.opts.CaseInsensitive, d.Blue),
		},
		Metallic:  n.FloatWidget(widgetMetal, t.opts.CaseInsensitive, d.Metallic),
		Roughness: n.FloatWidget(widgetRough, t.opts.CaseInsensitive, d.Roughness),
	}
}

func (t *Tracer) applyMaterial(n *domain.Node, objs []domain.SceneObject) {
	mat := t.Material(n)
	if mat == nil {
		return
	}
	for i := range objs {
		m := *mat
		objs[i].Material = &m
	}
}
