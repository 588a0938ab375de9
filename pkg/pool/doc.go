// Package pool implements a fixed-size worker pool that returns an observable
// Future for every submitted task.
//
// A pool owns N worker goroutines and one bounded FIFO task queue. Submit
// pairs a function with its argument and hands back a Future: a thread-safe
// proxy for the not-yet-available result that callers can block on, poll, or
// race to cancel before a worker picks the task up.
//
// # Architecture Overview
//
//	┌────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                  │
//	│                                                                    │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐      │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │      │
//	│  └──────┬───────┘      └──────┬───────┘      └──────┬───────┘      │
//	│         │   claim → execute → publish              │               │
//	│         └─────────────────────┼────────────────────┘               │
//	│                               │                                    │
//	│  ┌────────────────────────────┴───────────────────────────┐        │
//	│  │        Bounded FIFO queue  [task][task][task]           │        │
//	│  │        mutex + notEmpty/notFull conditions              │        │
//	│  └────────────────────────────▲───────────────────────────┘        │
//	│                               │ blocks when full (backpressure)    │
//	│                         Submit(fn, arg)                            │
//	└────────────────────────────────────────────────────────────────────┘
//
// # Future Lifecycle
//
// Every future moves monotonically through at most three states:
//
//	Pending ──► Running ──► Completed
//	   │            └─────► Error
//	   └──────────────────► Cancelled
//
// Once terminal, a future never changes again. Cancel succeeds only while
// the task is strictly Pending; the decisive check happens under the
// future's own lock at the moment a worker is about to run it, so the
// cancel/claim race has exactly one winner. A Running task is never
// preempted: cancellation prevents work from starting, it does not stop
// work in flight.
//
// # Waiting
//
// Get blocks until the future is terminal. GetTimeout gives up after a
// deadline with ErrTimeout but leaves the future untouched, so a late
// completion is still retrievable afterwards. Done and State observe
// without blocking. Each future carries its own lock and completion
// channel; waiters never contend on the pool-wide queue lock.
//
// # Shutdown
//
// Shutdown stops intake and drains: every queued task still runs, and the
// call returns once all workers exited. ShutdownNow also cancels every
// queued-but-unclaimed task, letting only the tasks already executing
// finish. After either mode the drain invariant holds:
//
//	Submitted == Completed + Cancelled
//
// where Completed includes tasks whose function returned an error.
//
// # Usage
//
//	p, err := pool.New[int, int64](4, 64)
//	if err != nil { ... }
//
//	fut, err := p.Submit(func(n int) (int64, error) {
//		return factorial(n), nil
//	}, 20)
//	if err != nil { ... }
//
//	v, err := fut.GetTimeout(500 * time.Millisecond)
//	switch {
//	case errors.Is(err, pool.ErrTimeout):
//		// still running; fut.Get() later returns the real outcome
//	case errors.Is(err, pool.ErrCancelled):
//		// lost to a Cancel
//	case err != nil:
//		// the task's own error
//	}
//
//	p.Shutdown()
//	_ = p.Close()
package pool
