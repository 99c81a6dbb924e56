package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer records the steps of long-running operations such as the
// reload pipeline.
type Tracer interface {
	// Record starts recording a new vertex for the named step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
}

// Vertex represents one recorded step.
type Vertex interface {
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}
