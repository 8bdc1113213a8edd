// Package parallel distributes block generation across goroutines.
//
// Each worker of a WorkerPool has a stable index, so callers can give every
// worker private, non-thread-safe state (an arithmetic engine and its
// scratch buffers) and index it from the task.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is one unit of work. worker is the index of the goroutine running it,
// in [0, Workers()).
type Task func(worker int)

// WorkerPool is a pool of goroutines for parallel block generation.
//
// The pool distributes tasks across workers, each with its own queue.
// Workers steal from other queues when their own is empty, which keeps
// them busy when blocks near the set take much longer than blocks outside.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// workQueues holds per-worker queues. A worker pulls from its own
	// queue first.
	workQueues []chan Task

	// done signals workers to stop.
	done chan struct{}

	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	queueSize int
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan Task, workers),
		done:       make(chan struct{}),
		queueSize:  queueSize,
	}

	for i := range workers {
		p.workQueues[i] = make(chan Task, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(id, myQueue)
			return

		case task := <-myQueue:
			if task != nil {
				task(id)
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen(id)
				continue
			}
			// Nothing anywhere, block on own queue.
			select {
			case <-p.done:
				p.drainQueue(id, myQueue)
				return
			case task := <-myQueue:
				if task != nil {
					task(id)
				}
			}
		}
	}
}

// drainQueue runs all remaining tasks in a queue.
func (p *WorkerPool) drainQueue(id int, queue chan Task) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task(id)
			}
		default:
			return
		}
	}
}

// steal takes a task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) Task {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case task := <-p.workQueues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks across workers and waits for all of them.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(tasks []Task) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(tasks))

	for i, task := range tasks {
		wrapped := func(worker int) {
			defer completionWG.Done()
			task(worker)
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			// Closing; the task is dropped.
			completionWG.Done()
		}
	}

	completionWG.Wait()
}

// Close stops accepting work, runs everything already queued and stops
// the workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
