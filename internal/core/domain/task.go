package domain

// StatusSuccess is the status code a completed try reports when it
// finished successfully. Every other value is a non-success.
const StatusSuccess = 0

// TaskKey identifies a single try of a task. A task may be attempted
// several times; all tries share the task ID.
type TaskKey struct {
	TaskID    int
	TaskTryID int
}

// Task is one recorded execution attempt from a completed run.
// Timestamps are unix seconds; zero means the event never happened.
type Task struct {
	TaskID    int     `json:"task_id"`
	TaskTryID int     `json:"task_try_id"`
	WorkerID  string  `json:"worker_id,omitempty"`
	Status    int     `json:"task_status"`
	Cores     float64 `json:"cores,omitempty"`

	InputFiles  []string `json:"input_files"`
	OutputFiles []string `json:"output_files"`

	WhenReady            float64 `json:"when_ready"`
	WhenRunning          float64 `json:"when_running"`
	TimeWorkerStart      float64 `json:"time_worker_start"`
	TimeWorkerEnd        float64 `json:"time_worker_end"`
	WhenWaitingRetrieval float64 `json:"when_waiting_retrieval"`
	WhenRetrieved        float64 `json:"when_retrieved"`
}

// Key returns the try-qualified identity of the task.
func (t *Task) Key() TaskKey {
	return TaskKey{TaskID: t.TaskID, TaskTryID: t.TaskTryID}
}

// Succeeded reports whether this try completed with the success status.
func (t *Task) Succeeded() bool {
	return t.Status == StatusSuccess
}
