package telemetry

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/runviz/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
// The server path records no progress UI, so the wired tracer is the
// no-op one; the inspect command builds a progrock recorder directly.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewNoopTracer(), nil
		},
	})
}
