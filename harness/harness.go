// Package harness wires a shared counter to a worker pool, joins every
// worker and reports the observed count next to the expected one.
package harness

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"v.io/x/lib/vlog"

	"github.com/tedmax100/sharedcounter/counter"
	"github.com/tedmax100/sharedcounter/pool"
)

// StateHook 在每次狀態轉換後被呼叫
type StateHook func(runID uuid.UUID, s State)

type Option func(*Harness)

// WithConfig replaces DefaultConfig. An invalid config makes New fail.
func WithConfig(cfg Config) Option {
	return func(h *Harness) {
		h.cfg = cfg
	}
}

// WithHistory shares a history between harnesses.
func WithHistory(history *History) Option {
	return func(h *Harness) {
		h.history = history
	}
}

func WithStateHook(hook StateHook) Option {
	return func(h *Harness) {
		h.hook = hook
	}
}

// Harness 本身沒有全域狀態，每次 Run 都建立新的 counter 和 pool
type Harness struct {
	cfg     Config
	history *History
	hook    StateHook
}

func New(opts ...Option) (*Harness, error) {
	h := &Harness{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.cfg.Validate(); err != nil {
		return nil, err
	}
	if h.history == nil {
		h.history = NewHistory(h.cfg.HistoryTTL)
	}
	return h, nil
}

// Run runs workerCount workers with iterations increments each against a
// fresh counter governed by policy, using a throwaway harness.
func Run(workerCount, iterations int, policy counter.Policy) (Result, error) {
	h, err := New()
	if err != nil {
		return Result{}, err
	}
	return h.Run(workerCount, iterations, policy)
}

func (h *Harness) Config() Config {
	return h.cfg
}

func (h *Harness) History() *History {
	return h.history
}

// RunDefault runs policy with the configured worker and iteration counts.
func (h *Harness) RunDefault(policy counter.Policy) (Result, error) {
	return h.Run(h.cfg.Workers, h.cfg.Iterations, policy)
}

// Run 執行一次：歸零 -> spawn -> join -> 讀值。
// worker 失敗時回傳錯誤，不回報部分的計數。
func (h *Harness) Run(workerCount, iterations int, policy counter.Policy) (Result, error) {
	if err := validateCounts(workerCount, iterations); err != nil {
		return Result{}, err
	}

	res := Result{
		RunID:      uuid.New(),
		Policy:     policy,
		Workers:    workerCount,
		Iterations: iterations,
		Expected:   uint64(workerCount) * uint64(iterations),
		Started:    time.Now(),
	}
	h.transition(res.RunID, Idle)

	c, err := counter.New(policy)
	if err != nil {
		return Result{}, errors.Wrapf(err, "run %s", res.RunID)
	}
	defer c.Close()
	h.transition(res.RunID, CountersZeroed)

	p := pool.New()
	if err := p.Spawn(workerCount, iterations, c); err != nil {
		// workers already started must still be joined before returning
		if jerr := p.Join(); jerr != nil {
			vlog.Errorf("run %s: join after failed spawn: %v", res.RunID, jerr)
		}
		return Result{}, errors.Wrapf(err, "run %s", res.RunID)
	}
	h.transition(res.RunID, WorkersSpawned)

	if err := p.Join(); err != nil {
		return Result{}, errors.Wrapf(err, "run %s: %d of %d workers failed", res.RunID, len(p.Failures()), workerCount)
	}
	h.transition(res.RunID, AllWorkersJoined)

	res.Observed = c.Value()
	res.Elapsed = time.Since(res.Started)
	h.history.Record(res)
	h.transition(res.RunID, Reported)

	vlog.Infof("run %s: policy=%v workers=%d iterations=%d observed=%d expected=%d elapsed=%v",
		res.RunID, policy, workerCount, iterations, res.Observed, res.Expected, res.Elapsed)
	return res, nil
}

// RunAll 依序執行每個 policy，每次都是全新的 counter 與 pool。
// 沒有指定 policy 時執行 counter.Policies()。遇到第一個錯誤就停止。
func (h *Harness) RunAll(workerCount, iterations int, policies ...counter.Policy) ([]Result, error) {
	if len(policies) == 0 {
		policies = counter.Policies()
	}
	results := make([]Result, 0, len(policies))
	for _, policy := range policies {
		res, err := h.Run(workerCount, iterations, policy)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (h *Harness) transition(runID uuid.UUID, s State) {
	vlog.VI(1).Infof("run %s: %v", runID, s)
	if h.hook != nil {
		h.hook(runID, s)
	}
}
