// Package checkpoint restores the persisted collections of a completed
// run. The shipped format is one JSON document per collection inside
// the run directory; the engine only sees the ports.CheckpointStore
// interface and stays agnostic of the format.
package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	managerFile   = "manager.json"
	workersFile   = "workers.json"
	filesFile     = "files.json"
	tasksFile     = "tasks.json"
	subgraphsFile = "subgraphs.json"
)

// collectionFiles lists every checkpoint file a run may carry, in the
// order BackingFiles reports them.
var collectionFiles = []string{
	managerFile, workersFile, filesFile, tasksFile, subgraphsFile,
}

var _ ports.CheckpointStore = (*Store)(nil)

// Store reads the checkpoint of one run directory.
type Store struct {
	dir string
}

// NewStore creates a Store over the given run directory.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// BackingFiles returns the checkpoint files present in the run
// directory. The manager document is the only mandatory one, so a
// sparse run reports a shorter list.
func (s *Store) BackingFiles() []string {
	out := make([]string, 0, len(collectionFiles))
	for _, name := range collectionFiles {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			out = append(out, path)
		}
	}
	return out
}

// Restore loads all persisted collections. Collections other than the
// manager are optional and restore empty when their file is absent.
func (s *Store) Restore(ctx context.Context) (*ports.Checkpoint, error) {
	var (
		manager   domain.Manager
		workers   []*domain.Worker
		files     []*domain.FileInfo
		tasks     []*domain.Task
		subgraphs []*domain.Subgraph
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return s.decode(managerFile, &manager, true) })
	g.Go(func() error { return s.decode(workersFile, &workers, false) })
	g.Go(func() error { return s.decode(filesFile, &files, false) })
	g.Go(func() error { return s.decode(tasksFile, &tasks, false) })
	g.Go(func() error { return s.decode(subgraphsFile, &subgraphs, false) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cp := &ports.Checkpoint{
		Manager:   manager,
		Workers:   make(map[string]*domain.Worker, len(workers)),
		Files:     make(map[string]*domain.FileInfo, len(files)),
		Tasks:     make(map[domain.TaskKey]*domain.Task, len(tasks)),
		Subgraphs: make(map[int]*domain.Subgraph, len(subgraphs)),
	}
	for _, w := range workers {
		cp.Workers[w.ID] = w
	}
	for _, f := range files {
		cp.Files[f.Name] = f
	}
	for _, t := range tasks {
		cp.Tasks[t.Key()] = t
	}
	for _, sg := range subgraphs {
		cp.Subgraphs[sg.ID] = sg
	}
	return cp, nil
}

func (s *Store) decode(name string, v any, required bool) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the configured logs dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read checkpoint collection"), "path", path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCheckpointCorrupt, err.Error()), "path", path)
	}
	return nil
}
