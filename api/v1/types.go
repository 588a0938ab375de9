// Package v1 defines the wire types of the observability API.
package v1

import "time"

// StatsResponse is a point-in-time snapshot of the pool counters.
type StatsResponse struct {
	Submitted uint64 `json:"submitted"`
	Completed uint64 `json:"completed"`
	Cancelled uint64 `json:"cancelled"`
	Pending   uint64 `json:"pending"`
}

// Run is one recorded batch execution.
type Run struct {
	Id         string    `json:"id"`
	Workload   string    `json:"workload"`
	Tasks      int       `json:"tasks"`
	Completed  int       `json:"completed"`
	Cancelled  int       `json:"cancelled"`
	Failed     int       `json:"failed"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RunListResponse is a page of recorded runs.
type RunListResponse struct {
	Page      int   `json:"page"`
	PageCount int   `json:"pageCount"`
	Total     int   `json:"total"`
	Runs      []Run `json:"runs"`
}

// CreateRunRequest triggers one batch through the in-process runner. Tasks
// are never accepted over the wire as code; the workload is a name resolved
// against the local registry.
type CreateRunRequest struct {
	Workload string `json:"workload" binding:"required"`
	Args     []int  `json:"args" binding:"required,min=1"`
	Retry    bool   `json:"retry"`
}
