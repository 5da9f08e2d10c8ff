package workflow

import (
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Snapshot is the on-disk form of an editor graph. JSON exports parse as YAML.
type Snapshot struct {
	Nodes   []NodeDTO            `yaml:"nodes"`
	Links   []LinkDTO            `yaml:"links"`
	Results map[NodeID]ResultDTO `yaml:"results"`
}

// NodeDTO is a node entry of a snapshot.
type NodeDTO struct {
	ID      NodeID      `yaml:"id"`
	Class   string      `yaml:"class"`
	Inputs  []InputDTO  `yaml:"inputs"`
	Widgets []WidgetDTO `yaml:"widgets"`
}

// InputDTO is a named input slot. Link is null when nothing is connected.
type InputDTO struct {
	Name string `yaml:"name"`
	Link *int   `yaml:"link"`
}

// WidgetDTO is a widget name and its current value.
type WidgetDTO struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// LinkDTO connects two nodes.
type LinkDTO struct {
	ID     int    `yaml:"id"`
	Origin NodeID `yaml:"origin"`
	Target NodeID `yaml:"target"`
}

// ResultDTO is the last execution result the host reported for a node.
type ResultDTO struct {
	Settings map[string]any `yaml:"settings"`
	GLBURL   []string       `yaml:"glb_url"`
	Stats    map[string]any `yaml:"stats"`
}

// NodeID accepts both numeric and string node ids.
type NodeID string

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *NodeID) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return zerr.With(domain.ErrGraphParseFailed, "line", n.Line)
	}
	*id = NodeID(n.Value)
	return nil
}
