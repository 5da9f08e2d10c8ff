package scene

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the scene engine factory Graft node.
const NodeID graft.ID = "adapter.scene_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Factory, error) {
			return NewFactory(), nil
		},
	})
}
