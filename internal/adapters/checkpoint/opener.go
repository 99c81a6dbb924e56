package checkpoint

import (
	"os"

	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CheckpointOpener = (*Opener)(nil)

// Opener binds Stores to run directories.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns a Store for the run at dir.
func (o *Opener) Open(dir string) (ports.CheckpointStore, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrTemplateNotFound, "dir", dir)
	}
	return NewStore(dir), nil
}
