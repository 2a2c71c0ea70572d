// Package asyncdispatch is the host-side wrapper spec.md §1/§9 calls out as
// an external collaborator: it schedules a single encode call on a worker
// goroutine and invokes a completion callback, the way a Node addon would
// hand an encode off to libuv's thread pool. The erasure-coding core stays
// synchronous (lukechampine.com/cauchyrs); this package only adds the
// "run it in the background, call me back" plumbing around it.
package asyncdispatch

import (
	"sync"

	"gitlab.com/NebulousLabs/log"
)

// Job is one unit of work to run on the dispatcher's worker pool: Encode
// does the actual (synchronous) encode/decode call.
type Job struct {
	// Encode performs the work. Its error is delivered to Callback
	// unchanged.
	Encode func() error
	// Callback is invoked once, from a worker goroutine, when Encode
	// returns. A Job that never starts because the Dispatcher was closed
	// first (see Close) never runs, and its Callback is not invoked.
	Callback func(error)
}

// Dispatcher runs Jobs on a bounded pool of worker goroutines. There is no
// cancellation of a running Job: once a worker has started a Job it runs
// to completion (spec §5, "Cancellation: none").
type Dispatcher struct {
	log    *log.Logger
	jobs   chan Job
	wg     sync.WaitGroup
	closed chan struct{}
	once   sync.Once
}

// New starts a Dispatcher with the given number of worker goroutines and
// logger. workers must be >= 1.
func New(workers int, logger *log.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		log:    logger,
		jobs:   make(chan Job, workers),
		closed: make(chan struct{}),
	}
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case job, ok := <-d.jobs:
			if !ok {
				return
			}
			err := job.Encode()
			if err != nil {
				d.log.Println("asyncdispatch: job failed:", err)
			}
			job.Callback(err)
		case <-d.closed:
			return
		}
	}
}

// Submit enqueues a job to run on the next available worker. It blocks if
// every worker is busy and the queue is full.
func (d *Dispatcher) Submit(j Job) {
	d.jobs <- j
}

// Close signals the workers to stop and waits for in-flight jobs to finish.
// Jobs still queued when the workers stop are dropped without running.
// Submit does not check whether Close was called: a Job submitted after
// Close is never run, and Submit blocks once the queue is full.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.closed)
	})
	d.wg.Wait()
}
