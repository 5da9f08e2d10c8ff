package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/preview/internal/adapters/config"  //nolint:depguard // Wired in node
	"go.trai.ch/preview/internal/adapters/logger"  //nolint:depguard // Wired in node
	"go.trai.ch/preview/internal/adapters/scene"   //nolint:depguard // Wired in node
	"go.trai.ch/preview/internal/adapters/watcher" //nolint:depguard // Wired in node
	"go.trai.ch/preview/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components is everything the CLI needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, watcher.NodeID, scene.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[*scene.Factory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, w, factory, log),
				Logger: log,
			}, nil
		},
	})
}
