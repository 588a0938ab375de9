package pool

import "fmt"

// worker is the per-goroutine loop: wait for work, claim the future, execute,
// publish. It exits on halt, or on shutdown once the queue is empty.
func (p *Pool[A, R]) worker(id int) {
	defer p.wg.Done()

	log := p.cfg.logger.With("worker", id)
	log.Debug("worker started")

	for {
		p.mu.Lock()
		for p.head == nil && !p.shutdown {
			p.notEmpty.Wait()
		}
		if p.halt || (p.shutdown && p.head == nil) {
			p.mu.Unlock()
			log.Debug("worker exiting")
			return
		}

		t := p.pop()
		p.notFull.Signal()
		p.mu.Unlock()

		fut := t.future

		// The claim is the authoritative check against a concurrent Cancel:
		// once it succeeds the task always reaches Completed or Error.
		if !fut.claim() {
			p.cancelled.Add(1)
			continue
		}

		result, err := p.execute(fut)
		fut.publish(result, err)
		p.completed.Add(1)
	}
}

// execute runs the task function outside every lock. A panic inside the task
// becomes its Error outcome; it never crosses the worker loop.
func (p *Pool[A, R]) execute(fut *Future[A, R]) (result R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task panicked: %v", rec)
		}
	}()

	return fut.fn(fut.arg)
}
