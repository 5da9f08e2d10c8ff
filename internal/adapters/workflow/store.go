// Package workflow reads editor graph snapshots from disk and serves the latest one.
package workflow

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Options configures a Store.
type Options struct {
	// AssetServer is the base URL produced assets are served from.
	AssetServer string
	// MaxSlots caps assembler slot growth.
	MaxSlots int
	// Roles maps node classes to roles.
	Roles map[string]domain.NodeRole
}

// Store implements ports.GraphStore for snapshot files.
// Graph is safe to call from any goroutine while Load runs.
type Store struct {
	logger ports.Logger
	opts   Options
	roles  *domain.RoleTable

	mu     sync.Mutex
	hooks  domain.ExecutedHook
	digest uint64
	loaded bool

	current atomic.Pointer[domain.Graph]
}

// NewStore creates a Store serving an empty graph until the first Load.
func NewStore(logger ports.Logger, opts Options) *Store {
	if opts.MaxSlots <= 0 {
		opts.MaxSlots = domain.DefaultMaxSlots
	}
	s := &Store{
		logger: logger,
		opts:   opts,
		roles:  domain.NewRoleTable(opts.Roles),
	}
	s.current.Store(domain.NewGraph())
	return s
}

// OnExecuted chains hook after the hooks already installed. Hooks run for every node
// result found in a snapshot, before the store ingests it.
func (s *Store) OnExecuted(hook domain.ExecutedHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = domain.ChainExecuted(s.hooks, hook)
}

// Graph returns the latest graph. It never returns nil.
func (s *Store) Graph() *domain.Graph {
	return s.current.Load()
}

// Load reads the snapshot at path. Unchanged contents are not parsed again.
// It reports whether a new graph was published. Concurrent loads are serialized, so the
// last Load to return has published the contents it read.
func (s *Store) Load(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// #nosec G304 -- path is the graph file named on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrGraphReadFailed.Error()), "path", path)
	}

	digest := xxhash.Sum64(data)
	if s.loaded && digest == s.digest {
		return false, nil
	}

	g, err := s.parse(data)
	if err != nil {
		return false, zerr.With(err, "path", path)
	}

	s.current.Store(g)
	s.digest = digest
	s.loaded = true
	return true, nil
}

func (s *Store) parse(data []byte) (*domain.Graph, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGraphParseFailed.Error())
	}

	g := domain.NewGraph()
	for i := range snap.Nodes {
		n := s.buildNode(&snap.Nodes[i])
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, l := range snap.Links {
		g.AddLink(domain.Link{ID: domain.LinkID(l.ID), Origin: string(l.Origin), Target: string(l.Target)})
	}

	ingest := domain.ChainExecuted(s.hooks, s.applyResult)
	for id, res := range snap.Results {
		n, ok := g.Node(string(id))
		if !ok {
			s.logger.Warn(fmt.Sprintf("execution result for unknown node %s ignored", id))
			continue
		}
		result := domain.ExecutionResult{Settings: res.Settings, Stats: res.Stats}
		if len(res.GLBURL) > 0 {
			result.AssetPath = res.GLBURL[0]
		}
		ingest(n, result)
	}
	return g, nil
}

func (s *Store) buildNode(dto *NodeDTO) *domain.Node {
	n := &domain.Node{
		ID:    string(dto.ID),
		Class: dto.Class,
		Role:  s.roles.Resolve(dto.Class),
	}
	for _, in := range dto.Inputs {
		input := domain.Input{Name: in.Name}
		if in.Link != nil {
			id := domain.LinkID(*in.Link)
			input.Link = &id
		}
		n.Inputs = append(n.Inputs, input)
	}
	for _, w := range dto.Widgets {
		n.Widgets = append(n.Widgets, domain.Widget{Name: w.Name, Value: w.Value})
	}
	if n.Role == domain.RoleAssembler {
		n.EnsureTrailingSlot(s.opts.MaxSlots)
	}
	return n
}

func (s *Store) applyResult(n *domain.Node, result domain.ExecutionResult) {
	n.ApplyResult(s.opts.AssetServer, result)
}
