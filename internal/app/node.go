package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runviz/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/runviz/internal/adapters/httpapi"
	"go.trai.ch/runviz/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/runviz/internal/engine/runtime"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			runtime.NodeID,
			httpapi.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			rt, err := graft.Dep[*runtime.Runtime](ctx)
			if err != nil {
				return nil, err
			}

			server, err := graft.Dep[*httpapi.Server](ctx)
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

			return New(rt, server, cfg, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			runtime.NodeID,
			httpapi.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	rt, err := graft.Dep[*runtime.Runtime](ctx)
	if err != nil {
		return nil, err
	}

	server, err := graft.Dep[*httpapi.Server](ctx)
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

	return &Components{
		App:     a,
		Runtime: rt,
		Server:  server,
		Config:  cfg,
		Logger:  log,
	}, nil
}
