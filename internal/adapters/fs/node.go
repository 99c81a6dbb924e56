package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/runviz/internal/core/ports"
)

// NodeID is the unique identifier for the Fingerprinter Graft node.
const NodeID graft.ID = "adapter.fs.fingerprint"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
