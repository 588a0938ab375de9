// Package retry implements caller-side retry of failed tasks. The pool never
// retries a task by itself; the policy here is the one it prescribes instead:
// observe a terminal Error state and resubmit a fresh task.
package retry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"

	"github.com/antonioclim/taskpool/pkg/pool"
)

const defaultMaxTries = 3

// Resubmit submits fn to p and waits for its outcome, resubmitting a new
// task with exponential backoff every time the previous one ends in the
// Error state. Cancellation and a closed pool are permanent: they stop the
// retry loop immediately.
func Resubmit[A, R any](ctx context.Context, p *pool.Pool[A, R], fn pool.Func[A, R], arg A, opts ...backoff.RetryOption) (R, error) {
	operation := func() (R, error) {
		fut, err := p.Submit(fn, arg)
		if err != nil {
			var zero R
			return zero, backoff.Permanent(err)
		}

		v, err := fut.Get()
		if errors.Is(err, pool.ErrCancelled) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	if len(opts) == 0 {
		opts = []backoff.RetryOption{
			backoff.WithBackOff(backoff.NewExponentialBackOff()),
			backoff.WithMaxTries(defaultMaxTries),
		}
	}

	return backoff.Retry(ctx, operation, opts...)
}
