// Package stats derives per-task dependency and timing statistics from
// the raw task records of a restored run.
package stats

import (
	"math"
	"sort"

	"go.trai.ch/runviz/internal/core/domain"
)

// minDuration is the floor for derived durations. Clock resolution and
// event-ordering artifacts can make raw deltas zero or negative; the
// measurement is clamped rather than discarded.
const minDuration = 0.01

// Build derives one stat row per task try and reduces the result to a
// single representative row per task ID, sorted by task ID.
//
// Dependency edges come from file lineage: if a task consumes a file
// another task produced, the consumer depends on the producer. A task
// consuming its own output contributes no edge.
func Build(tasks map[domain.TaskKey]*domain.Task) []domain.TaskStat {
	producers := make(map[string]int)
	for _, t := range tasks {
		for _, f := range t.OutputFiles {
			producers[f] = t.TaskID
		}
	}

	dependencies := make(map[int]map[int]struct{})
	dependents := make(map[int]map[int]struct{})
	for _, t := range tasks {
		if dependencies[t.TaskID] == nil {
			dependencies[t.TaskID] = make(map[int]struct{})
			dependents[t.TaskID] = make(map[int]struct{})
		}
	}

	for _, t := range tasks {
		for _, f := range t.InputFiles {
			parent, ok := producers[f]
			if !ok || parent == t.TaskID {
				continue
			}
			dependencies[t.TaskID][parent] = struct{}{}
			dependents[parent][t.TaskID] = struct{}{}
		}
	}

	rows := make([]domain.TaskStat, 0, len(tasks))
	for _, t := range tasks {
		row := domain.TaskStat{
			TaskID:          t.TaskID,
			TaskTryID:       t.TaskTryID,
			DependencyCount: len(dependencies[t.TaskID]),
			DependentCount:  len(dependents[t.TaskID]),
		}

		if t.WhenRunning != 0 {
			row.ResponseTime = clamp(t.WhenRunning - t.WhenReady)
		}
		if t.Succeeded() {
			row.ExecutionTime = clamp(t.TimeWorkerEnd - t.TimeWorkerStart)
		}
		if t.WhenRetrieved != 0 && t.WhenWaitingRetrieval != 0 {
			row.WaitingRetrievalTime = clamp(t.WhenRetrieved - t.WhenWaitingRetrieval)
		}

		rows = append(rows, row)
	}

	return selectBestTry(rows, tasks)
}

// clamp rounds a raw delta to 2 decimals and floors it at minDuration.
func clamp(delta float64) *float64 {
	v := math.Round(delta*100) / 100
	if v < minDuration {
		v = minDuration
	}
	return &v
}

// selectBestTry keeps exactly one row per task ID: a successful try
// wins over a failed one, and among equals the latest try wins. The
// policy is total, so every distinct task ID survives.
func selectBestTry(rows []domain.TaskStat, tasks map[domain.TaskKey]*domain.Task) []domain.TaskStat {
	best := make(map[int]domain.TaskStat, len(rows))
	for _, row := range rows {
		current, ok := best[row.TaskID]
		if !ok || betterTry(row, current, tasks) {
			best[row.TaskID] = row
		}
	}

	out := make([]domain.TaskStat, 0, len(best))
	for _, row := range best {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out
}

func betterTry(a, b domain.TaskStat, tasks map[domain.TaskKey]*domain.Task) bool {
	aOK := trySucceeded(tasks, a)
	bOK := trySucceeded(tasks, b)
	if aOK != bOK {
		return aOK
	}
	return a.TaskTryID > b.TaskTryID
}

func trySucceeded(tasks map[domain.TaskKey]*domain.Task, row domain.TaskStat) bool {
	t, ok := tasks[domain.TaskKey{TaskID: row.TaskID, TaskTryID: row.TaskTryID}]
	return ok && t.Succeeded()
}
