package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/antonioclim/taskpool/internal/models"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/workloads"
	"github.com/antonioclim/taskpool/pkg/pool"
	"github.com/antonioclim/taskpool/pkg/retry"
)

// Runner executes named batches of workload tasks on one long-lived pool and
// records a summary of each batch in the store.
type Runner struct {
	pool  *pool.Pool[int, int64]
	store *store.Store
}

// BatchParams describes one batch: a registered workload name, one task per
// argument, and whether tasks that end in an error are resubmitted.
type BatchParams struct {
	Workload string
	Args     []int
	Retry    bool
}

func NewRunnerService(p *pool.Pool[int, int64], st *store.Store) *Runner {
	return &Runner{pool: p, store: st}
}

// RunBatch submits every task in the batch, waits for all outcomes, persists
// the run summary and returns it. Task-level failures do not fail the batch;
// they are counted in the summary instead.
func (r *Runner) RunBatch(ctx context.Context, params BatchParams) (*models.Run, error) {
	fn, err := workloads.Lookup(params.Workload)
	if err != nil {
		return nil, err
	}

	log := zap.S().Named("runner_service")
	log.Infow("starting batch", "workload", params.Workload, "tasks", len(params.Args))

	start := time.Now()
	var completed, cancelled, failed int
	if params.Retry {
		completed, failed = r.runWithRetry(ctx, fn, params.Args)
	} else {
		completed, cancelled, failed = r.run(fn, params.Args)
	}

	run := &models.Run{
		ID:        uuid.New(),
		Workload:  params.Workload,
		Tasks:     len(params.Args),
		Completed: completed,
		Cancelled: cancelled,
		Failed:    failed,
		Duration:  time.Since(start),
	}

	if err := r.store.Runs().Save(ctx, run); err != nil {
		log.Errorw("failed to save run", "runId", run.ID, "error", err)
		return nil, err
	}

	log.Infow("batch finished",
		"runId", run.ID,
		"completed", run.Completed,
		"cancelled", run.Cancelled,
		"failed", run.Failed,
		"duration", run.Duration,
	)
	return run, nil
}

func (r *Runner) run(fn pool.Func[int, int64], args []int) (completed, cancelled, failed int) {
	futures := make([]*pool.Future[int, int64], 0, len(args))
	for _, arg := range args {
		fut, err := r.pool.Submit(fn, arg)
		if err != nil {
			// Pool shutting down: everything not yet submitted is lost,
			// account for what made it in.
			break
		}
		futures = append(futures, fut)
	}

	for _, fut := range futures {
		_, err := fut.Get()
		switch {
		case err == nil:
			completed++
		case errors.Is(err, pool.ErrCancelled):
			cancelled++
		default:
			failed++
		}
	}
	return completed, cancelled, failed
}

// runWithRetry waits on every task through the resubmission helper, so a
// transient task error consumes retries instead of counting as failed.
func (r *Runner) runWithRetry(ctx context.Context, fn pool.Func[int, int64], args []int) (completed, failed int) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, arg := range args {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := retry.Resubmit(ctx, r.pool, fn, arg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
			} else {
				completed++
			}
		}()
	}
	wg.Wait()
	return completed, failed
}

// Stats returns the live pool counters.
func (r *Runner) Stats() pool.Stats {
	return r.pool.Stats()
}

// Shutdown drains the pool and releases it.
func (r *Runner) Shutdown() error {
	r.pool.Shutdown()
	return r.pool.Close()
}
