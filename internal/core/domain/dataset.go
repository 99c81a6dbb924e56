// Package domain contains the core domain models for a completed
// batch-execution run: the raw records restored from a checkpoint and
// the derived per-task statistics served to the visualization layer.
package domain

// Fingerprint is an opaque, comparable token summarizing the state of
// the file set backing a dataset. Equal tokens mean the backing files
// have not changed; the zero value means "never computed".
type Fingerprint string

// Manager holds the run-level coordinator record.
type Manager struct {
	TimeStart            float64 `json:"time_start"`
	TimeEnd              float64 `json:"time_end"`
	FirstTaskStartCommit float64 `json:"when_first_task_start_commit"`
	TasksSubmitted       int     `json:"tasks_submitted"`
	TasksDone            int     `json:"tasks_done"`
	TasksFailed          int     `json:"tasks_failed"`
}

// Worker is one execution agent that participated in the run.
type Worker struct {
	ID               string  `json:"worker_id"`
	Hostname         string  `json:"hostname"`
	Cores            int     `json:"cores"`
	TimeConnected    float64 `json:"time_connected"`
	TimeDisconnected float64 `json:"time_disconnected"`
}

// FileInfo describes a file transferred during the run.
type FileInfo struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Producers []int  `json:"producers,omitempty"`
	Consumers []int  `json:"consumers,omitempty"`
}

// Subgraph groups related tasks of the run.
type Subgraph struct {
	ID      int   `json:"subgraph_id"`
	TaskIDs []int `json:"task_ids"`
}

// Dataset is one immutable snapshot of a restored run. A reload builds
// a complete new Dataset and publishes it wholesale; readers holding an
// old snapshot keep a consistent view and must never mutate it.
type Dataset struct {
	// TemplatePath is the absolute directory of the active run and
	// TemplateName its base name, the identity shown to callers.
	TemplatePath string
	TemplateName string

	Manager   Manager
	Workers   map[string]*Worker
	Files     map[string]*FileInfo
	Tasks     map[TaskKey]*Task
	Subgraphs map[int]*Subgraph

	// MinTime and MaxTime bound the run's global time window.
	MinTime float64
	MaxTime float64

	// Stats holds one derived row per task ID, best try selected.
	Stats []TaskStat

	// BackingFiles are the checkpoint files this snapshot was restored
	// from; Fingerprint summarizes their state at restore time.
	BackingFiles []string
	Fingerprint  Fingerprint
}
