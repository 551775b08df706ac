package counter

import (
	"sync"
)

// mutexCounter 是一個併發安全的計數器
type mutexCounter struct {
	mu     sync.Mutex
	value  uint64
	closed bool
}

// Increment 增加計數器的值
func (c *mutexCounter) Increment() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClosed(MutexGuarded, "increment")
	}
	c.value++
	return nil
}

// Value 返回計數器的當前值
func (c *mutexCounter) Value() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *mutexCounter) Policy() Policy {
	return MutexGuarded
}

func (c *mutexCounter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClosed(MutexGuarded, "close")
	}
	c.closed = true
	return nil
}
