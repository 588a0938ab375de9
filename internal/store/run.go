package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/antonioclim/taskpool/internal/models"
	srvErrors "github.com/antonioclim/taskpool/pkg/errors"
)

// RunStore handles run-history storage using DuckDB.
type RunStore struct {
	db *sql.DB
}

// NewRunStore creates a new run store.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

// Save inserts a run record. A zero CreatedAt is stamped with the current
// time, so the caller's copy matches what readers will see.
func (s *RunStore) Save(ctx context.Context, run *models.Run) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, queryInsertRun,
		run.ID.String(),
		run.Workload,
		run.Tasks,
		run.Completed,
		run.Cancelled,
		run.Failed,
		run.Duration.Milliseconds(),
		run.CreatedAt,
	)
	return err
}

// Get retrieves a run by ID.
func (s *RunStore) Get(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	row := s.db.QueryRowContext(ctx, queryGetRun, id.String())

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewRunNotFoundError(id.String())
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// List returns run records, newest first unless the options say otherwise.
func (s *RunStore) List(ctx context.Context, opts ...ListOption) ([]models.Run, error) {
	builder := sq.Select(
		"id",
		"workload",
		"tasks",
		"completed",
		"cancelled",
		"failed",
		"duration_ms",
		"created_at",
	).From("runs")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// Count returns the number of runs matching the options.
func (s *RunStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("runs")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func scanRun(scan func(dest ...any) error) (*models.Run, error) {
	var (
		run        models.Run
		id         string
		durationMS int64
	)
	err := scan(
		&id,
		&run.Workload,
		&run.Tasks,
		&run.Completed,
		&run.Cancelled,
		&run.Failed,
		&durationMS,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByWorkloads(workloads ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(workloads) == 0 {
			return b
		}
		return b.Where(sq.Eq{"workload": workloads})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("created_at DESC", "id")
	}
}
