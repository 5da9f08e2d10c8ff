package ports

import "go.trai.ch/preview/internal/core/domain"

// GraphSource provides the host's current graph.
//
//go:generate mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type GraphSource interface {
	// Graph returns the latest graph snapshot. It never returns nil.
	Graph() *domain.Graph
}

// GraphStore parses graph snapshot files and serves the latest one.
type GraphStore interface {
	GraphSource
	// Load reads the snapshot at path. It reports whether the graph changed.
	Load(path string) (bool, error)
}
