package domain

// TaskStat is one derived statistics row for a task try. Duration
// fields are nil when their prerequisite timestamps are absent; a
// missing measurement is never reported as zero.
type TaskStat struct {
	TaskID    int `json:"task_id"`
	TaskTryID int `json:"task_try_id"`

	ResponseTime         *float64 `json:"task_response_time"`
	ExecutionTime        *float64 `json:"task_execution_time"`
	WaitingRetrievalTime *float64 `json:"task_waiting_retrieval_time"`

	DependencyCount int `json:"dependency_count"`
	DependentCount  int `json:"dependent_count"`
}
