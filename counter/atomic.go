package counter

import (
	"sync/atomic"
)

// atomicCounter will increment a number safely in concurrent environment.
type atomicCounter struct {
	value  atomic.Uint64
	closed atomic.Bool
}

// Increment increments the counter atomically.
func (c *atomicCounter) Increment() error {
	if c.closed.Load() {
		return errClosed(AtomicHardware, "increment")
	}
	c.value.Add(1)
	return nil
}

// Value returns the current count atomically.
func (c *atomicCounter) Value() uint64 {
	return c.value.Load()
}

func (c *atomicCounter) Policy() Policy {
	return AtomicHardware
}

func (c *atomicCounter) Close() error {
	if c.closed.Swap(true) {
		return errClosed(AtomicHardware, "close")
	}
	return nil
}
