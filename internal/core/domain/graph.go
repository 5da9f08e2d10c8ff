package domain

import (
	"iter"
	"maps"
	"strings"

	"go.trai.ch/zerr"
)

// LinkID identifies a connection between two nodes.
type LinkID int

// Link connects an output of the origin node to an input of the target node.
type Link struct {
	ID     LinkID
	Origin string
	Target string
}

// Input is a named input slot of a node. Link is nil when nothing is connected.
type Input struct {
	Name string
	Link *LinkID
}

// Widget is a named, user-editable parameter of a node.
type Widget struct {
	Name  string
	Value any
}

// ExecutionResult is the payload the host reports after a node has executed.
type ExecutionResult struct {
	Settings  map[string]any
	AssetPath string
	Stats     map[string]any
}

// ExecutedHook is invoked after a node has executed.
type ExecutedHook func(node *Node, result ExecutionResult)

// ChainExecuted composes two hooks so that original runs before next.
// Either hook may be nil.
func ChainExecuted(original, next ExecutedHook) ExecutedHook {
	switch {
	case original == nil:
		return next
	case next == nil:
		return original
	}
	return func(node *Node, result ExecutionResult) {
		original(node, result)
		next(node, result)
	}
}

// Node is a single node of the editor graph as seen by the preview.
type Node struct {
	ID      string
	Class   string
	Role    NodeRole
	Inputs  []Input
	Widgets []Widget

	settings   map[string]any
	stats      map[string]any
	lastOutput string
}

// Widget returns the first widget named name.
// With fold set, names are compared case-insensitively.
func (n *Node) Widget(name string, fold bool) (Widget, bool) {
	for _, w := range n.Widgets {
		if w.Name == name || (fold && strings.EqualFold(w.Name, name)) {
			return w, true
		}
	}
	return Widget{}, false
}

// SetWidget updates the value of the named widget, appending it when missing.
func (n *Node) SetWidget(name string, value any) {
	for i := range n.Widgets {
		if n.Widgets[i].Name == name {
			n.Widgets[i].Value = value
			return
		}
	}
	n.Widgets = append(n.Widgets, Widget{Name: name, Value: value})
}

// Input returns the input slot with the given name.
func (n *Node) Input(name string) (Input, bool) {
	for _, in := range n.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}

// Setting returns a value from the most recent execution settings.
func (n *Node) Setting(key string) (any, bool) {
	v, ok := n.settings[key]
	return v, ok
}

// Settings returns a copy of the most recent execution settings.
func (n *Node) Settings() map[string]any {
	return maps.Clone(n.settings)
}

// Stats returns a copy of the most recent execution statistics.
func (n *Node) Stats() map[string]any {
	return maps.Clone(n.stats)
}

// LastOutput returns the asset URL produced by the most recent execution.
func (n *Node) LastOutput() string {
	return n.lastOutput
}

// SetLastOutput overrides the cached produced asset URL.
func (n *Node) SetLastOutput(url string) {
	n.lastOutput = url
}

// ApplyResult ingests an execution result. The produced asset path, when present,
// becomes the node's baked URL on the given asset server.
func (n *Node) ApplyResult(base string, result ExecutionResult) {
	if result.Settings != nil {
		n.settings = maps.Clone(result.Settings)
	}
	if result.Stats != nil {
		n.stats = maps.Clone(result.Stats)
	}
	if result.AssetPath != "" {
		n.lastOutput = OutputURL(base, result.AssetPath)
	}
}

// Graph is a read-only view of the editor graph.
type Graph struct {
	nodes map[string]*Node
	order []string
	links map[LinkID]Link
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		links: make(map[LinkID]Link),
	}
}

// AddNode adds a node to the graph.
func (g *Graph) AddNode(n *Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return zerr.With(ErrDuplicateNode, "node", n.ID)
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

// AddLink registers a link.
func (g *Graph) AddLink(l Link) {
	g.links[l.ID] = l
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes yields all nodes in insertion order.
func (g *Graph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, id := range g.order {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Upstream returns the node feeding the given input, if it is connected.
func (g *Graph) Upstream(in Input) (*Node, bool) {
	if in.Link == nil {
		return nil, false
	}
	l, ok := g.links[*in.Link]
	if !ok {
		return nil, false
	}
	n, ok := g.nodes[l.Origin]
	return n, ok
}
