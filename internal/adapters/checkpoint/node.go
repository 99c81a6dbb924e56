package checkpoint

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/runviz/internal/core/ports"
)

// NodeID is the unique identifier for the checkpoint opener Graft node.
const NodeID graft.ID = "adapter.checkpoint"

func init() {
	graft.Register(graft.Node[ports.CheckpointOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CheckpointOpener, error) {
			return NewOpener(), nil
		},
	})
}
