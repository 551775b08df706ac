package counter

import (
	"sync/atomic"
)

// unsyncCounter 完全沒有保護 value，多個 goroutine 同時 Increment 會遺失更新
type unsyncCounter struct {
	value  uint64
	closed atomic.Bool
}

func (c *unsyncCounter) Increment() error {
	if c.closed.Load() {
		return errClosed(Unsynchronized, "increment")
	}
	// read-modify-write without exclusivity
	c.value++
	return nil
}

func (c *unsyncCounter) Value() uint64 {
	return c.value
}

func (c *unsyncCounter) Policy() Policy {
	return Unsynchronized
}

func (c *unsyncCounter) Close() error {
	if c.closed.Swap(true) {
		return errClosed(Unsynchronized, "close")
	}
	return nil
}
