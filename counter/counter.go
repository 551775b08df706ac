package counter

import (
	"github.com/pkg/errors"
)

// ErrPolicyMisuse 表示呼叫端的程式錯誤，例如 Close 之後又呼叫 Increment
var ErrPolicyMisuse = errors.New("policy misuse")

//go:generate mockgen -destination=mock_counter.go -package=counter . Incrementer

// Incrementer is the only capability a worker needs.
type Incrementer interface {
	Increment() error
}

// Counter 是共享計數器，所有 worker 必須持有同一個實例
type Counter interface {
	Incrementer
	// Value 在所有 worker join 之後讀取才是確定的結果
	Value() uint64
	Policy() Policy
	// Close tears the counter down. Increment and Close fail with ErrPolicyMisuse afterwards.
	Close() error
}

// New returns a zeroed counter governed by p.
func New(p Policy) (Counter, error) {
	switch p {
	case Unsynchronized:
		return &unsyncCounter{}, nil
	case MutexGuarded:
		return &mutexCounter{}, nil
	case AtomicHardware:
		return &atomicCounter{}, nil
	}
	return nil, errors.Errorf("cannot build counter for %v", p)
}

func errClosed(p Policy, op string) error {
	return errors.Wrapf(ErrPolicyMisuse, "%s on torn down %v counter", op, p)
}
