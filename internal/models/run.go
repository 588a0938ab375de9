package models

import (
	"time"

	"github.com/google/uuid"
)

// Run is the stored summary of one batch of tasks executed through the pool.
type Run struct {
	ID        uuid.UUID
	Workload  string
	Tasks     int
	Completed int
	Cancelled int
	Failed    int
	Duration  time.Duration
	CreatedAt time.Time
}
