// Package telemetry provides Tracer implementations for recording
// reload-pipeline steps.
package telemetry

import (
	"context"

	"go.trai.ch/runviz/internal/core/ports"
)

// NoopTracer is a no-op implementation of ports.Tracer, used where
// step recording has no surface (the HTTP server path).
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Record creates a new no-op vertex.
func (t *NoopTracer) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

type noopVertex struct{}

// Complete does nothing.
func (noopVertex) Complete(error) {}
