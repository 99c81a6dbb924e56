package runtime

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/runviz/internal/adapters/checkpoint" //nolint:depguard // Wired in node
	"go.trai.ch/runviz/internal/adapters/config"     //nolint:depguard // Wired in node
	"go.trai.ch/runviz/internal/adapters/fs"         //nolint:depguard // Wired in node
	"go.trai.ch/runviz/internal/adapters/logger"     //nolint:depguard // Wired in node
	"go.trai.ch/runviz/internal/adapters/telemetry"  //nolint:depguard // Wired in node
	"go.trai.ch/runviz/internal/core/ports"
)

// NodeID is the unique identifier for the runtime engine Graft node.
const NodeID graft.ID = "engine.runtime"

func init() {
	graft.Register(graft.Node[*Runtime]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			checkpoint.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Runtime, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			opener, err := graft.Dep[ports.CheckpointOpener](ctx)
			if err != nil {
				return nil, err
			}
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(opener, fp, log, tracer, Options{
				LogsDir:       cfg.LogsDir,
				TemplateLease: cfg.Leases.Template(),
				ReloadLease:   cfg.Leases.Reload(),
			}), nil
		},
	})
}
