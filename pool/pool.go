// Package pool runs a fixed set of workers against a shared counter and
// joins them exactly once.
package pool

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"v.io/x/lib/vlog"

	"github.com/tedmax100/sharedcounter/counter"
)

// Pool is not reusable: once Join has been called, Spawn, Go and Join fail
// with counter.ErrPolicyMisuse.
type Pool struct {
	mu       sync.Mutex
	joined   bool
	workers  int
	failures []*WorkerFailure
	group    errgroup.Group
}

func New() *Pool {
	return &Pool{}
}

// Spawn starts workerCount workers, each calling c.Increment iterations times.
// Every worker shares c itself; nothing is copied per worker.
func (p *Pool) Spawn(workerCount, iterations int, c counter.Incrementer) error {
	if workerCount < 0 || iterations < 0 {
		return errors.Errorf("spawn: negative worker count %d or iterations %d", workerCount, iterations)
	}
	if c == nil {
		return errors.New("spawn: nil counter")
	}
	for i := 0; i < workerCount; i++ {
		if err := p.spawn(iterations, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pool) spawn(iterations int, c counter.Incrementer) error {
	return p.start(iterations, func(done *int) error {
		for *done < iterations {
			if err := c.Increment(); err != nil {
				return err
			}
			*done++
		}
		return nil
	})
}

// Go starts a single worker running fn.
func (p *Pool) Go(fn func() error) error {
	return p.start(1, func(done *int) error {
		if err := fn(); err != nil {
			return err
		}
		*done = 1
		return nil
	})
}

func (p *Pool) start(expected int, body func(done *int) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.joined {
		return errors.Wrap(counter.ErrPolicyMisuse, "spawn after join")
	}
	id := p.workers
	p.workers++

	p.group.Go(func() (err error) {
		done := 0
		defer func() {
			if r := recover(); r != nil {
				err = p.fail(&WorkerFailure{Worker: id, Completed: done, Expected: expected, Panic: r, Err: errors.Errorf("panic: %v", r)})
			}
		}()
		vlog.VI(2).Infof("worker %d: started, %d iterations", id, expected)
		if werr := body(&done); werr != nil {
			return p.fail(&WorkerFailure{Worker: id, Completed: done, Expected: expected, Err: werr})
		}
		vlog.VI(2).Infof("worker %d: finished", id)
		return nil
	})
	return nil
}

func (p *Pool) fail(f *WorkerFailure) error {
	vlog.Errorf("%v", f)
	p.mu.Lock()
	p.failures = append(p.failures, f)
	p.mu.Unlock()
	return f
}

// Join blocks until every spawned worker has returned, and reports the
// first worker failure. It returns immediately when nothing was spawned.
// Calling Join twice is a programming error.
func (p *Pool) Join() error {
	p.mu.Lock()
	if p.joined {
		p.mu.Unlock()
		return errors.Wrap(counter.ErrPolicyMisuse, "pool already joined")
	}
	p.joined = true
	p.mu.Unlock()

	return p.group.Wait()
}

// Workers returns how many workers have been spawned.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.workers
}

// Failures lists every worker failure seen so far. Complete only after Join.
func (p *Pool) Failures() []*WorkerFailure {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*WorkerFailure, len(p.failures))
	copy(out, p.failures)
	return out
}
