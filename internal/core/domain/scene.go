package domain

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/core/math32"
)

// LiveSlot is the identity slot of objects traced from a non-assembler node and of baked fallbacks.
const LiveSlot = "live"

// MaterialOverride replaces the material of every mesh in a model.
type MaterialOverride struct {
	Color     [3]float32
	Metallic  float32
	Roughness float32
}

// SceneObject is one resolved model: where to load it from and how to place and shade it.
type SceneObject struct {
	// SourceURL is the asset server URL. Empty means unresolved.
	SourceURL string
	Transform math32.Matrix4
	Material  *MaterialOverride
	// Slot is the input the object was traced through.
	Slot string
	// Key is the identity key, assigned once the target set is built.
	Key string
}

// NewSceneObject creates an object with an identity transform.
func NewSceneObject(url string) SceneObject {
	return SceneObject{SourceURL: url, Transform: Identity()}
}

// IdentityKey builds the cache key for the index-th object of a slot.
func IdentityKey(slot string, index int) string {
	return fmt.Sprintf("%s_%d", slot, index)
}

// EntryState is the state of a loaded-model cache entry.
type EntryState uint8

const (
	// EntryAbsent means the last load failed. The key is retried on the next tick.
	EntryAbsent EntryState = iota
	// EntryLoading means a load is in flight.
	EntryLoading
	// EntryLive means a model is in the scene.
	EntryLive
)

// String returns a lowercase state name.
func (s EntryState) String() string {
	switch s {
	case EntryLoading:
		return "loading"
	case EntryLive:
		return "live"
	default:
		return "absent"
	}
}

// Asset holds the facts decoded from a mesh asset.
type Asset struct {
	URL        string
	Meshes     int
	Primitives int
	Materials  int
	// Bounds is the local-space bounding box of all mesh positions.
	Bounds math32.Box3
	Size   int
}

// CachedAsset is a downloaded asset together with the validators the server sent for it.
type CachedAsset struct {
	Data         []byte
	ETag         string
	LastModified string
}

// Revalidatable reports whether a conditional request can check the asset is current.
func (c *CachedAsset) Revalidatable() bool {
	return c.ETag != "" || c.LastModified != ""
}

// EntryStatus is the externally visible state of one cache entry.
type EntryStatus struct {
	Key   string
	URL   string
	State EntryState
}

// SceneStatus is a snapshot of one preview after a synchronizer tick.
type SceneStatus struct {
	Viewer  string
	Ready   bool
	Visible bool
	Size    Size
	Grid    GridSpec
	Targets int
	Entries []EntryStatus
	// Stats are the viewed node's latest execution statistics, nil when hidden or
	// switched off with show_stats.
	Stats map[string]any
}

// StatsLine renders Stats as sorted key=value pairs. Nested maps are flattened with dotted
// keys, so {"bbox_mm": {"width": 2}} becomes bbox_mm.width=2.
func (s SceneStatus) StatsLine() string {
	var pairs []string
	flattenStats("", s.Stats, &pairs)
	slices.Sort(pairs)
	return strings.Join(pairs, " ")
}

func flattenStats(prefix string, stats map[string]any, pairs *[]string) {
	for k, v := range stats {
		if nested, ok := v.(map[string]any); ok {
			flattenStats(prefix+k+".", nested, pairs)
			continue
		}
		*pairs = append(*pairs, fmt.Sprintf("%s%s=%v", prefix, k, v))
	}
}

// Count returns how many entries are in the given state.
func (s SceneStatus) Count(state EntryState) int {
	n := 0
	for _, e := range s.Entries {
		if e.State == state {
			n++
		}
	}
	return n
}
