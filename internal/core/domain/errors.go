package domain

import "go.trai.ch/zerr"

var (
	// ErrNoDataBound is returned when an operation needs a loaded
	// dataset and none has been published yet.
	ErrNoDataBound = zerr.New("no dataset bound")

	// ErrTemplateNotFound is returned when a runtime template does not
	// resolve to an existing run directory.
	ErrTemplateNotFound = zerr.New("runtime template not found")

	// ErrCheckpointCorrupt is returned when a checkpoint collection
	// cannot be decoded.
	ErrCheckpointCorrupt = zerr.New("checkpoint corrupt")

	// ErrReloadFailed wraps any failure inside the reload pipeline.
	// The previously published snapshot stays intact when it occurs.
	ErrReloadFailed = zerr.New("reload failed")
)
