package harness

import (
	"time"

	"github.com/google/uuid"

	"github.com/tedmax100/sharedcounter/counter"
)

// Result 是一次 run 的觀察值與期望值，由呼叫端自行比較
type Result struct {
	RunID      uuid.UUID
	Policy     counter.Policy
	Workers    int
	Iterations int
	Observed   uint64
	Expected   uint64
	Started    time.Time
	Elapsed    time.Duration
}

// Consistent reports whether no increment was lost.
func (r Result) Consistent() bool {
	return r.Observed == r.Expected
}

// Lost is the number of increments that did not reach the counter.
func (r Result) Lost() uint64 {
	if r.Observed >= r.Expected {
		return 0
	}
	return r.Expected - r.Observed
}
