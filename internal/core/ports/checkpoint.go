// Package ports defines the interfaces between the runtime engine and
// its collaborators.
package ports

import (
	"context"

	"go.trai.ch/runviz/internal/core/domain"
)

//go:generate mockgen -source=checkpoint.go -destination=mocks/mock_checkpoint.go -package=mocks

// Checkpoint holds the collections restored from a persisted run.
type Checkpoint struct {
	Manager   domain.Manager
	Workers   map[string]*domain.Worker
	Files     map[string]*domain.FileInfo
	Tasks     map[domain.TaskKey]*domain.Task
	Subgraphs map[int]*domain.Subgraph
}

// CheckpointStore restores the persisted collections of one run. The
// on-disk format is owned by the implementation and opaque to the
// engine.
type CheckpointStore interface {
	// Restore loads all persisted collections from the checkpoint.
	Restore(ctx context.Context) (*Checkpoint, error)

	// BackingFiles returns the checkpoint files currently in use,
	// for staleness fingerprinting. May be empty.
	BackingFiles() []string
}

// CheckpointOpener binds a CheckpointStore to a run directory.
type CheckpointOpener interface {
	// Open returns a store for the run at dir. It fails with
	// domain.ErrTemplateNotFound if dir does not exist.
	Open(dir string) (CheckpointStore, error)
}
