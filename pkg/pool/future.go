package pool

import (
	"errors"
	"sync"
	"time"
)

// State describes where a submitted task is in its lifecycle. Transitions are
// monotonic: Pending->Running->{Completed,Error} or Pending->Cancelled. A
// terminal state never changes again.
type State int32

const (
	StatePending State = iota
	StateRunning
	StateCompleted
	StateCancelled
	StateError
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled || s == StateError
}

var (
	// ErrCancelled is returned by Get when the task was cancelled before a
	// worker claimed it.
	ErrCancelled = errors.New("task cancelled")

	// ErrTimeout is returned by GetTimeout when the deadline elapsed while
	// the task was still pending or running. It is an observation, not a
	// state: a later Get still yields the real outcome.
	ErrTimeout = errors.New("timed out waiting for task")
)

// Func is a unit of work: one argument in, one result or error out. The pool
// makes no assumption about its content and never retries it. A running Func
// cannot be interrupted; pair Get with GetTimeout or Cancel if liveness
// matters.
type Func[A, R any] func(arg A) (R, error)

// Future is the observable handle for the eventual result of one submitted
// task. It is safe for concurrent use by any number of goroutines.
type Future[A, R any] struct {
	fn  Func[A, R]
	arg A

	mu     sync.Mutex
	state  State
	result R
	err    error

	// done is closed exactly once, on the first terminal transition.
	done chan struct{}
}

func newFuture[A, R any](fn Func[A, R], arg A) *Future[A, R] {
	return &Future[A, R]{
		fn:    fn,
		arg:   arg,
		state: StatePending,
		done:  make(chan struct{}),
	}
}

// Get blocks until the task reaches a terminal state. It returns the result
// on completion, ErrCancelled on cancellation, or the task's own error. Get
// never returns for a task stuck forever in Pending or Running.
func (f *Future[A, R]) Get() (R, error) {
	<-f.done
	return f.outcome()
}

// GetTimeout behaves like Get but gives up after d, returning ErrTimeout.
// The future itself is untouched; the eventual outcome stays retrievable.
func (f *Future[A, R]) GetTimeout(d time.Duration) (R, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.outcome()
	case <-timer.C:
		var zero R
		return zero, ErrTimeout
	}
}

// Cancel attempts the Pending->Cancelled transition. It returns true only if
// the task was still pending; a task a worker already claimed keeps running
// to completion and Cancel returns false.
func (f *Future[A, R]) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePending {
		return false
	}
	f.state = StateCancelled
	f.err = ErrCancelled
	close(f.done)
	return true
}

// Done reports whether the task reached a terminal state, without blocking.
func (f *Future[A, R]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// State returns the task's current lifecycle state.
func (f *Future[A, R]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Future[A, R]) outcome() (R, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.err
}

// claim is the worker-side half of the cancellation race: the authoritative
// "still pending?" check performed under the future's own lock right before
// execution. It returns false when a concurrent Cancel won.
func (f *Future[A, R]) claim() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePending {
		return false
	}
	f.state = StateRunning
	return true
}

// publish stores the task's outcome and wakes every waiter. It is a no-op
// unless the future is still running, which keeps terminal states immutable.
func (f *Future[A, R]) publish(result R, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateRunning {
		return
	}
	if err != nil {
		f.err = err
		f.state = StateError
	} else {
		f.result = result
		f.state = StateCompleted
	}
	close(f.done)
}
