// Package runtime implements the runtime state orchestrator: one
// shared handle over the currently loaded run dataset, with staleness
// detection and lease-arbitrated reloads.
//
// Many request handlers share a single Runtime. Readers always see a
// complete snapshot: the reload pipeline assembles a full replacement
// dataset off to the side and publishes it with one atomic swap, so a
// failed reload leaves the previous snapshot readable.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/runviz/internal/engine/lease"
	"go.trai.ch/runviz/internal/engine/stats"
	"go.trai.ch/runviz/internal/metrics"
	"go.trai.ch/zerr"
)

// Options configures a Runtime.
type Options struct {
	// LogsDir is the directory holding one subdirectory per run.
	LogsDir string

	// TemplateLease throttles concurrent template switches.
	TemplateLease time.Duration

	// ReloadLease bounds how often the staleness check pays for a
	// fingerprint pass; contenders serve the published snapshot.
	ReloadLease time.Duration
}

// Runtime coordinates the checkpoint collaborator, the fingerprinter,
// and the stats builder behind two non-blocking leases.
type Runtime struct {
	logsDir string
	opener  ports.CheckpointOpener
	fp      ports.Fingerprinter
	log     ports.Logger
	tracer  ports.Tracer

	templateLease *lease.Lease
	reloadLease   *lease.Lease

	current atomic.Pointer[domain.Dataset]
}

// New creates a Runtime with no dataset bound.
func New(
	opener ports.CheckpointOpener,
	fp ports.Fingerprinter,
	log ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Runtime {
	return &Runtime{
		logsDir:       opts.LogsDir,
		opener:        opener,
		fp:            fp,
		log:           log,
		tracer:        tracer,
		templateLease: lease.New(opts.TemplateLease),
		reloadLease:   lease.New(opts.ReloadLease),
	}
}

// Snapshot returns the currently published dataset, or nil when no
// template has been loaded yet. The returned dataset is immutable.
func (r *Runtime) Snapshot() *domain.Dataset {
	return r.current.Load()
}

// TaskStats returns the published stat rows, one per task ID.
func (r *Runtime) TaskStats() []domain.TaskStat {
	if ds := r.current.Load(); ds != nil {
		return ds.Stats
	}
	return nil
}

// Template returns the base name of the active runtime template.
func (r *Runtime) Template() string {
	if ds := r.current.Load(); ds != nil {
		return ds.TemplateName
	}
	return ""
}

// ReloadIfNeeded checks whether the backing files of the published
// dataset changed and reloads when they did. It returns true only when
// a reload actually happened.
//
// It returns (false, nil) when no dataset is bound, when the dataset
// declares no backing files, when the reload lease is contended, or
// when the fingerprint is unchanged. A failed reload surfaces a
// domain.ErrReloadFailed-wrapped error; the published snapshot is
// untouched in that case.
//
// The snapshot is re-read under the lease and republished with a
// compare-and-swap, so a template switch that lands while the check is
// in flight always wins over the staleness refresh.
func (r *Runtime) ReloadIfNeeded(ctx context.Context) (bool, error) {
	if ds := r.current.Load(); ds == nil || len(ds.BackingFiles) == 0 {
		return false, nil
	}

	var reloaded bool
	ran, err := r.reloadLease.Do(func() error {
		// The pre-lease snapshot may have been superseded; everything
		// below must act on the one published right now.
		ds := r.current.Load()
		if ds == nil || len(ds.BackingFiles) == 0 {
			return nil
		}

		fp, err := r.fp.Fingerprint(ds.BackingFiles)
		if err != nil {
			metrics.ReloadFailures.Inc()
			return reloadError(err)
		}
		if fp == ds.Fingerprint {
			return nil
		}

		next, err := r.load(ctx, ds.TemplateName)
		if err != nil {
			metrics.ReloadFailures.Inc()
			return reloadError(err)
		}

		// Publish only if the snapshot we checked is still the current
		// one; losing the swap means a concurrent template switch
		// landed and the freshly built dataset is discarded.
		if !r.current.CompareAndSwap(ds, next) {
			return nil
		}
		r.log.Info(fmt.Sprintf("[%s] backing files changed, dataset reloaded", next.TemplateName))
		metrics.Reloads.WithLabelValues("check").Inc()
		reloaded = true
		return nil
	})
	if !ran {
		metrics.LeaseContention.WithLabelValues("reload").Inc()
		return false, nil
	}
	return reloaded, err
}

// EnsureTemplate makes the named template the active dataset. It
// returns (false, nil) for an empty name or while another switch holds
// the template lease, and (true, nil) without reloading when the name
// already matches the active template. The whole reload pipeline runs
// inside the template lease.
func (r *Runtime) EnsureTemplate(ctx context.Context, template string) (bool, error) {
	if template == "" {
		return false, nil
	}

	var switched bool
	ran, err := r.templateLease.Do(func() error {
		if ds := r.current.Load(); ds != nil && templateName(template) == ds.TemplateName {
			switched = true
			return nil
		}

		next, err := r.load(ctx, template)
		if err != nil {
			metrics.ReloadFailures.Inc()
			return reloadError(err)
		}

		r.current.Store(next)
		r.log.Info(fmt.Sprintf("[%s] runtime template changed to: %s", next.TemplateName, template))
		metrics.Reloads.WithLabelValues("template").Inc()
		switched = true
		return nil
	})
	if !ran {
		metrics.LeaseContention.WithLabelValues("template").Inc()
		return false, nil
	}
	return switched, err
}

// load runs the reload pipeline for the named template and returns the
// resulting dataset. Publication is the caller's decision; a half-built
// dataset never escapes.
func (r *Runtime) load(ctx context.Context, template string) (*domain.Dataset, error) {
	name := templateName(template)
	dir := filepath.Join(r.logsDir, name)

	_, v := r.tracer.Record(ctx, "open checkpoint")
	store, err := r.opener.Open(dir)
	v.Complete(err)
	if err != nil {
		return nil, err
	}

	restoreCtx, v := r.tracer.Record(ctx, "restore collections")
	cp, err := store.Restore(restoreCtx)
	v.Complete(err)
	if err != nil {
		return nil, err
	}

	_, v = r.tracer.Record(ctx, "derive task stats")
	rows := stats.Build(cp.Tasks)
	v.Complete(nil)

	files := store.BackingFiles()
	_, v = r.tracer.Record(ctx, "fingerprint backing files")
	fp, err := r.fp.Fingerprint(files)
	v.Complete(err)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		TemplatePath: dir,
		TemplateName: name,
		Manager:      cp.Manager,
		Workers:      cp.Workers,
		Files:        cp.Files,
		Tasks:        cp.Tasks,
		Subgraphs:    cp.Subgraphs,
		MinTime:      cp.Manager.FirstTaskStartCommit,
		MaxTime:      cp.Manager.TimeEnd,
		Stats:        rows,
		BackingFiles: files,
		Fingerprint:  fp,
	}, nil
}

func templateName(template string) string {
	return filepath.Base(filepath.Clean(template))
}

func reloadError(err error) error {
	return zerr.Wrap(errors.Join(domain.ErrReloadFailed, err), "reload pipeline aborted")
}
