package pool

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	// ErrPoolClosed is returned by Submit once a shutdown has begun.
	ErrPoolClosed = errors.New("pool is shut down")

	// ErrPoolRunning is returned by Close when the pool was not shut down
	// first.
	ErrPoolRunning = errors.New("pool must be shut down before close")
)

// task is a queue node pairing a future with its successor. Nodes live from
// Submit until the single point they leave the queue, either claimed by a
// worker or discarded by ShutdownNow.
type task[A, R any] struct {
	future *Future[A, R]
	next   *task[A, R]
}

// Stats is a point-in-time snapshot of the pool's counters. Counters never
// decrease and Submitted >= Completed + Cancelled at any instant; equality
// holds once the pool has fully drained after either shutdown mode. Completed
// includes tasks whose function returned an error.
type Stats struct {
	Submitted uint64
	Completed uint64
	Cancelled uint64
	Pending   uint64
}

// Pool executes submitted tasks on a fixed set of worker goroutines, feeding
// them from one bounded FIFO queue. Submissions beyond the queue capacity
// block until a slot frees.
type Pool[A, R any] struct {
	cfg config

	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	head *task[A, R]
	tail *task[A, R]
	size int

	shutdown bool // stop accepting work, drain the queue
	halt     bool // also abandon queued work

	workers  int
	capacity int
	wg       sync.WaitGroup

	submitted atomic.Uint64
	completed atomic.Uint64
	cancelled atomic.Uint64
}

// New creates a pool with workers goroutines and a task queue bounded at
// queueSize, starting every worker immediately.
func New[A, R any](workers, queueSize int, opts ...Option) (*Pool[A, R], error) {
	if workers <= 0 {
		return nil, fmt.Errorf("pool: workers must be positive, got %d", workers)
	}
	if queueSize <= 0 {
		return nil, fmt.Errorf("pool: queue size must be positive, got %d", queueSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = uuid.NewString()[:8]
	}
	cfg.logger = cfg.logger.Named(cfg.name)

	p := &Pool[A, R]{
		cfg:      cfg,
		workers:  workers,
		capacity: queueSize,
	}
	p.notEmpty = sync.NewCond(&p.mu)
	p.notFull = sync.NewCond(&p.mu)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	p.cfg.logger.Debugw("pool started", "workers", workers, "queueSize", queueSize)

	return p, nil
}

// Submit queues fn with its argument and returns the future that will carry
// the outcome. It blocks while the queue is at capacity; once a shutdown has
// begun it fails with ErrPoolClosed and nothing is enqueued.
func (p *Pool[A, R]) Submit(fn Func[A, R], arg A) (*Future[A, R], error) {
	if fn == nil {
		return nil, errors.New("pool: nil task function")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for p.size >= p.capacity && !p.shutdown {
		p.notFull.Wait()
	}
	if p.shutdown {
		return nil, ErrPoolClosed
	}

	t := &task[A, R]{future: newFuture(fn, arg)}
	if p.tail == nil {
		p.head = t
	} else {
		p.tail.next = t
	}
	p.tail = t
	p.size++

	p.submitted.Add(1)
	p.notEmpty.Signal()

	return t.future, nil
}

// Shutdown stops intake and blocks until the workers have drained the queue
// and exited. Already queued tasks run to completion.
func (p *Pool[A, R]) Shutdown() {
	p.mu.Lock()
	p.shutdown = true
	p.notEmpty.Broadcast()
	p.notFull.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
	p.cfg.logger.Debugw("pool shut down", "stats", p.Stats())
}

// ShutdownNow stops intake, cancels every queued task that no worker has
// claimed yet, and blocks until the workers exit. A task already executing
// is never interrupted; it finishes normally.
func (p *Pool[A, R]) ShutdownNow() {
	p.mu.Lock()
	p.shutdown = true
	p.halt = true

	// Drain the queue. Each node leaves the queue exactly once, so counting
	// cancellations here cannot double up with the worker-side count.
	for t := p.head; t != nil; t = t.next {
		if t.future.Cancel() || t.future.State() == StateCancelled {
			p.cancelled.Add(1)
		}
	}
	p.head = nil
	p.tail = nil
	p.size = 0

	p.notEmpty.Broadcast()
	p.notFull.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
	p.cfg.logger.Debugw("pool halted", "stats", p.Stats())
}

// Close releases the pool. The pool must have been shut down first; calling
// Close on a live pool returns ErrPoolRunning.
func (p *Pool[A, R]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.shutdown {
		return ErrPoolRunning
	}
	return nil
}

// Stats returns a snapshot of the pool counters. Pending is read under the
// queue lock; the rest are lock-free.
func (p *Pool[A, R]) Stats() Stats {
	p.mu.Lock()
	pending := p.size
	p.mu.Unlock()

	return Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Cancelled: p.cancelled.Load(),
		Pending:   uint64(pending),
	}
}

// pop removes and returns the queue head. Callers must hold p.mu and must
// have checked the queue is non-empty.
func (p *Pool[A, R]) pop() *task[A, R] {
	t := p.head
	p.head = t.next
	if p.head == nil {
		p.tail = nil
	}
	t.next = nil
	p.size--
	return t
}
