package sdk

import (
	"sync"
	"time"
)

// pool runs request bodies on a bounded set of workers. Workers are
// started on demand and retire after sitting idle for the grace period.
// Each submitted job is represented by a future the caller blocks on.
//
// Spawn, enqueue, retire and close all hold mu, so a job can never sit
// in the queue with no worker left to run it.
type pool struct {
	jobs   chan *job
	max    int
	idle   time.Duration
	closed chan struct{}
	once   sync.Once

	mu      sync.Mutex
	workers int
	waiting int
}

type job struct {
	fn   func() (string, error)
	done chan result
}

type result struct {
	body string
	err  error
}

type future struct {
	done chan result
}

func (f *future) wait() (string, error) {
	r := <-f.done
	return r.body, r.err
}

func newPool(max, depth int, idle time.Duration) *pool {
	return &pool{
		jobs:   make(chan *job, depth),
		max:    max,
		idle:   idle,
		closed: make(chan struct{}),
	}
}

func (p *pool) submit(fn func() (string, error)) (*future, error) {
	j := &job{fn: fn, done: make(chan result, 1)}

	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.closed:
		return nil, ErrClosed
	default:
	}

	select {
	case p.jobs <- j:
	default:
		return nil, ErrQueueFull
	}

	if p.waiting == 0 && p.workers < p.max {
		p.workers++
		go p.worker()
	}

	return &future{done: j.done}, nil
}

func (p *pool) worker() {
	timer := time.NewTimer(p.idle)
	defer timer.Stop()

	for {
		p.mu.Lock()
		p.waiting++
		p.mu.Unlock()

		select {
		case j := <-p.jobs:
			p.mu.Lock()
			p.waiting--
			p.mu.Unlock()

			body, err := j.fn()
			j.done <- result{body: body, err: err}

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(p.idle)
		case <-timer.C:
			// a job may have been enqueued between the timer firing
			// and this branch winning the select
			p.mu.Lock()
			p.waiting--
			if len(p.jobs) > 0 {
				p.mu.Unlock()
				timer.Reset(p.idle)
				continue
			}
			p.workers--
			p.mu.Unlock()
			return
		case <-p.closed:
			p.retire()
			return
		}
	}
}

func (p *pool) retire() {
	p.mu.Lock()
	p.waiting--
	p.workers--
	p.mu.Unlock()
}

// close stops the pool without waiting for queued work. Jobs still in
// the queue fail with ErrClosed so their callers unblock. Holding mu
// keeps submit from enqueueing after the drain.
func (p *pool) close() {
	p.once.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		close(p.closed)

		for {
			select {
			case j := <-p.jobs:
				j.done <- result{err: ErrClosed}
			default:
				return
			}
		}
	})
}
