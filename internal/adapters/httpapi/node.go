package httpapi

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/runviz/internal/engine/runtime"
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "adapter.httpapi"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			runtime.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Server, error) {
			rt, err := graft.Dep[*runtime.Runtime](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(rt, log, cfg.Sampling), nil
		},
	})
}
