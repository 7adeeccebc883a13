// Package parallel provides a small worker pool for data-parallel
// reduction work. Tasks are independent and write to disjoint output
// regions, so the pool needs no synchronization beyond a completion
// barrier.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool runs independent tasks across a fixed set of goroutines.
//
// The pool is call-scoped: create it, run one or more batches with
// ExecuteAll, then Close it. ExecuteAll provides the completion barrier;
// it does not return until every task in the batch has finished.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for tasks.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*4),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// worker is the main loop of each worker goroutine. It exits when the
// task channel is closed and drained.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// ExecuteAll distributes the tasks across the workers and waits for all
// of them to complete. Calling ExecuteAll after Close panics.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}

	var batch sync.WaitGroup
	batch.Add(len(tasks))
	for _, task := range tasks {
		task := task
		p.tasks <- func() {
			defer batch.Done()
			task()
		}
	}
	batch.Wait()
}

// Close stops all workers after any queued tasks finish.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int { return p.workers }
