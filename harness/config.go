package harness

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig 表示 worker 數量或迭代次數不合法
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the run sizing and how long reported runs stay in history.
type Config struct {
	Workers    int
	Iterations int
	HistoryTTL time.Duration
}

// DefaultConfig 是原始示範的設定：10 個 worker，每個累加一百萬次
func DefaultConfig() Config {
	return Config{
		Workers:    10,
		Iterations: 1_000_000,
		HistoryTTL: 10 * time.Minute,
	}
}

func (c Config) Validate() error {
	if err := validateCounts(c.Workers, c.Iterations); err != nil {
		return err
	}
	if c.HistoryTTL < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative history ttl %v", c.HistoryTTL)
	}
	return nil
}

func validateCounts(workers, iterations int) error {
	if workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "worker count must be positive, got %d", workers)
	}
	if iterations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "iterations per worker must be positive, got %d", iterations)
	}
	return nil
}
