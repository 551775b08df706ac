package harness_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/tedmax100/sharedcounter/harness"
)

func TestConfig(t *testing.T) {
	t.Run("defaults match the classic demonstration", func(t *testing.T) {
		cfg := harness.DefaultConfig()
		assert.Equal(t, 10, cfg.Workers)
		assert.Equal(t, 1_000_000, cfg.Iterations)
		assert.NoError(t, cfg.Validate())
	})

	cases := map[string]harness.Config{
		"zero workers":     {Workers: 0, Iterations: 1},
		"zero iterations":  {Workers: 1, Iterations: 0},
		"negative ttl":     {Workers: 1, Iterations: 1, HistoryTTL: -time.Second},
		"negative workers": {Workers: -1, Iterations: 1},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			err := cfg.Validate()
			assert.True(t, errors.Is(err, harness.ErrInvalidConfig), "got %v", err)

			h, err := harness.New(harness.WithConfig(cfg))
			assert.Nil(t, h)
			assert.True(t, errors.Is(err, harness.ErrInvalidConfig))
		})
	}
}
