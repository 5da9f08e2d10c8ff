package domain

import (
	"regexp"
	"strconv"
)

const (
	// MeshSlotPrefix names the first fan-in slot of an assembler.
	MeshSlotPrefix = "mesh_id"

	// DefaultMaxSlots caps how many numbered slots an assembler grows.
	DefaultMaxSlots = 50
)

var meshSlotPattern = regexp.MustCompile(`^mesh_id(?:_(\d+))?$`)

// IsMeshSlot reports whether an input name is a mesh reference slot.
func IsMeshSlot(name string) bool {
	return meshSlotPattern.MatchString(name)
}

// MeshSlotIndex returns the number of a mesh_id_<n> slot. The bare mesh_id slot is 0.
func MeshSlotIndex(name string) (int, bool) {
	m := meshSlotPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	if m[1] == "" {
		return 0, true
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MeshSlotName returns the name of the n-th numbered slot.
func MeshSlotName(n int) string {
	return MeshSlotPrefix + "_" + strconv.Itoa(n)
}

// MeshSlots returns the node's mesh reference inputs in declaration order.
func (n *Node) MeshSlots() []Input {
	var out []Input
	for _, in := range n.Inputs {
		if IsMeshSlot(in.Name) {
			out = append(out, in)
		}
	}
	return out
}

// EnsureTrailingSlot keeps one empty numbered slot after the highest connected one.
// It returns true when a slot was added.
func (n *Node) EnsureTrailingSlot(maxSlots int) bool {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}
	last := 1
	for _, in := range n.Inputs {
		if in.Link == nil {
			continue
		}
		if idx, ok := MeshSlotIndex(in.Name); ok && idx > last {
			last = idx
		}
	}
	next := min(last+1, maxSlots)
	name := MeshSlotName(next)
	if _, exists := n.Input(name); exists {
		return false
	}
	n.Inputs = append(n.Inputs, Input{Name: name})
	return true
}
