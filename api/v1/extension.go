package v1

import (
	"github.com/antonioclim/taskpool/internal/models"
	"github.com/antonioclim/taskpool/pkg/pool"
)

// NewRunFromModel converts a models.Run to an API Run.
func NewRunFromModel(run models.Run) Run {
	return Run{
		Id:         run.ID.String(),
		Workload:   run.Workload,
		Tasks:      run.Tasks,
		Completed:  run.Completed,
		Cancelled:  run.Cancelled,
		Failed:     run.Failed,
		DurationMs: run.Duration.Milliseconds(),
		CreatedAt:  run.CreatedAt,
	}
}

// NewStatsResponse converts pool counters to the API shape.
func NewStatsResponse(stats pool.Stats) StatsResponse {
	return StatsResponse{
		Submitted: stats.Submitted,
		Completed: stats.Completed,
		Cancelled: stats.Cancelled,
		Pending:   stats.Pending,
	}
}
