package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/preview/internal/core/domain"
)

func link(id domain.LinkID) *domain.LinkID {
	return &id
}

func TestGraph_AddNode(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddNode(&domain.Node{ID: "b"}))
	require.NoError(t, g.AddNode(&domain.Node{ID: "a"}))

	err := g.AddNode(&domain.Node{ID: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDuplicateNode.Error())

	var ids []string
	for n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"b", "a"}, ids)
	assert.Equal(t, 2, g.Len())
}

func TestGraph_Upstream(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddNode(&domain.Node{ID: "src"}))
	require.NoError(t, g.AddNode(&domain.Node{ID: "dst"}))
	g.AddLink(domain.Link{ID: 1, Origin: "src", Target: "dst"})
	g.AddLink(domain.Link{ID: 2, Origin: "gone", Target: "dst"})

	tests := []struct {
		name string
		in   domain.Input
		want string
	}{
		{name: "connected", in: domain.Input{Name: "mesh_id", Link: link(1)}, want: "src"},
		{name: "disconnected", in: domain.Input{Name: "mesh_id"}},
		{name: "unknown link", in: domain.Input{Name: "mesh_id", Link: link(9)}},
		{name: "missing origin", in: domain.Input{Name: "mesh_id", Link: link(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := g.Upstream(tt.in)
			if tt.want == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, n.ID)
		})
	}
}

func TestNode_Widget(t *testing.T) {
	n := &domain.Node{Widgets: []domain.Widget{{Name: "Pos_X", Value: 1.0}}}

	_, ok := n.Widget("pos_x", false)
	assert.False(t, ok)

	w, ok := n.Widget("pos_x", true)
	require.True(t, ok)
	assert.InDelta(t, 1.0, w.Value, 1e-9)

	n.SetWidget("Pos_X", 2.0)
	n.SetWidget("scale", 3.0)
	assert.Equal(t, []domain.Widget{{Name: "Pos_X", Value: 2.0}, {Name: "scale", Value: 3.0}}, n.Widgets)
}

func TestNode_FloatWidget(t *testing.T) {
	n := &domain.Node{Widgets: []domain.Widget{
		{Name: "a", Value: "2.5"},
		{Name: "b", Value: "wide"},
	}}

	assert.InDelta(t, 2.5, n.FloatWidget("a", false, 0), 1e-6)
	assert.InDelta(t, 7, n.FloatWidget("b", false, 7), 1e-6)
	assert.InDelta(t, 7, n.FloatWidget("c", false, 7), 1e-6)
}

func TestNode_ApplyResult(t *testing.T) {
	n := &domain.Node{ID: "5"}
	settings := map[string]any{"up_direction": "Z"}

	n.ApplyResult("http://host/", domain.ExecutionResult{
		Settings:  settings,
		AssetPath: "out/scene.glb",
		Stats:     map[string]any{"triangles": 12},
	})
	settings["up_direction"] = "Y"

	assert.Equal(t, "http://host/view?filename=scene.glb&type=output&subfolder=out", n.LastOutput())
	v, ok := n.Setting("up_direction")
	require.True(t, ok)
	assert.Equal(t, "Z", v)
	assert.Equal(t, 12, n.Stats()["triangles"])

	n.ApplyResult("http://host", domain.ExecutionResult{})
	assert.Equal(t, "http://host/view?filename=scene.glb&type=output&subfolder=out", n.LastOutput(),
		"a result without an asset keeps the previous output")
}

func TestChainExecuted(t *testing.T) {
	var calls []string
	first := func(*domain.Node, domain.ExecutionResult) { calls = append(calls, "first") }
	second := func(*domain.Node, domain.ExecutionResult) { calls = append(calls, "second") }

	domain.ChainExecuted(first, second)(&domain.Node{}, domain.ExecutionResult{})
	assert.Equal(t, []string{"first", "second"}, calls)

	assert.NotNil(t, domain.ChainExecuted(nil, second))
	assert.NotNil(t, domain.ChainExecuted(first, nil))
	assert.Nil(t, domain.ChainExecuted(nil, nil))
}

func TestRoleTable(t *testing.T) {
	table := domain.NewRoleTable(domain.DefaultRoles())

	assert.Equal(t, domain.RoleAssembler, table.Resolve("SceneAssembler"))
	assert.Equal(t, domain.RoleTransform, table.Resolve("MeshTransform"))
	assert.Equal(t, domain.RoleMaterial, table.Resolve("MeshMaterialInspector"))
	assert.Equal(t, domain.RoleSource, table.Resolve("LoadMesh"))

	var nilTable *domain.RoleTable
	assert.Equal(t, domain.RoleSource, nilTable.Resolve("SceneAssembler"))
}

func TestParseRole(t *testing.T) {
	for _, name := range []string{"source", "transform", "material", "assembler"} {
		role, err := domain.ParseRole(" " + name + " ")
		require.NoError(t, err)
		assert.Equal(t, name, role.String())
	}

	_, err := domain.ParseRole("viewer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownRole.Error())
}

func TestMeshSlots(t *testing.T) {
	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{name: "mesh_id", index: 0, ok: true},
		{name: "mesh_id_1", index: 1, ok: true},
		{name: "mesh_id_12", index: 12, ok: true},
		{name: "mesh_idx"},
		{name: "mesh_id_"},
		{name: "material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := domain.MeshSlotIndex(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.index, idx)
			assert.Equal(t, tt.ok, domain.IsMeshSlot(tt.name))
		})
	}

	n := &domain.Node{Inputs: []domain.Input{{Name: "mesh_id_2"}, {Name: "scale"}, {Name: "mesh_id_1"}}}
	names := slices.Collect(func(yield func(string) bool) {
		for _, in := range n.MeshSlots() {
			if !yield(in.Name) {
				return
			}
		}
	})
	assert.Equal(t, []string{"mesh_id_2", "mesh_id_1"}, names)
}

func TestNode_EnsureTrailingSlot(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []domain.Input
		maxSlots int
		added    bool
		last     string
	}{
		{
			name:   "empty assembler gets a second slot",
			inputs: []domain.Input{{Name: "mesh_id_1"}},
			added:  true,
			last:   "mesh_id_2",
		},
		{
			name:   "trailing slot already present",
			inputs: []domain.Input{{Name: "mesh_id_1", Link: link(1)}, {Name: "mesh_id_2"}},
			last:   "mesh_id_2",
		},
		{
			name:   "follows the highest connected slot",
			inputs: []domain.Input{{Name: "mesh_id_1"}, {Name: "mesh_id_4", Link: link(1)}},
			added:  true,
			last:   "mesh_id_5",
		},
		{
			name:     "capped",
			inputs:   []domain.Input{{Name: "mesh_id_3", Link: link(1)}},
			maxSlots: 3,
			last:     "mesh_id_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &domain.Node{Inputs: tt.inputs}
			assert.Equal(t, tt.added, n.EnsureTrailingSlot(tt.maxSlots))
			assert.Equal(t, tt.last, n.Inputs[len(n.Inputs)-1].Name)
		})
	}
}
