package counter

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	for _, p := range Policies() {
		t.Run(p.String()+" incrementing the counter 3 times leaves it at 3", func(t *testing.T) {
			counter := newCounter(t, p)
			require.NoError(t, counter.Increment())
			require.NoError(t, counter.Increment())
			require.NoError(t, counter.Increment())

			assertCounter(t, counter, 3)
		})
	}

	for _, p := range []Policy{MutexGuarded, AtomicHardware} {
		t.Run(p.String()+" it runs safely concurrently", func(t *testing.T) {
			wantedCount := 1000
			counter := newCounter(t, p)

			var wg sync.WaitGroup
			wg.Add(wantedCount)

			for i := 0; i < wantedCount; i++ {
				go func() {
					defer wg.Done()
					assert.NoError(t, counter.Increment())
				}()
			}
			wg.Wait()

			assertCounter(t, counter, uint64(wantedCount))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("starts at zero with the requested policy", func(t *testing.T) {
		for _, p := range Policies() {
			counter := newCounter(t, p)
			assert.Equal(t, p, counter.Policy())
			assertCounter(t, counter, 0)
		}
	})

	t.Run("rejects an unknown policy", func(t *testing.T) {
		counter, err := New(Policy(42))
		assert.Error(t, err)
		assert.Nil(t, counter)
	})
}

func TestClose(t *testing.T) {
	for _, p := range Policies() {
		t.Run(p.String(), func(t *testing.T) {
			// Arrange
			counter := newCounter(t, p)
			require.NoError(t, counter.Increment())

			// Act
			require.NoError(t, counter.Close())
			err := counter.Increment()

			// Assert
			assert.True(t, errors.Is(err, ErrPolicyMisuse), "got %v", err)
			assert.True(t, errors.Is(counter.Close(), ErrPolicyMisuse))
			// the value read before teardown is still readable
			assertCounter(t, counter, 1)
		})
	}
}

func TestPolicy(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "Unsynchronized", Unsynchronized.String())
		assert.Equal(t, "MutexGuarded", MutexGuarded.String())
		assert.Equal(t, "AtomicHardware", AtomicHardware.String())
		assert.Equal(t, "Policy(7)", Policy(7).String())
	})

	t.Run("only the lock and the atomic are guaranteed", func(t *testing.T) {
		assert.False(t, Unsynchronized.Guaranteed())
		assert.True(t, MutexGuarded.Guaranteed())
		assert.True(t, AtomicHardware.Guaranteed())
	})

	t.Run("parse", func(t *testing.T) {
		cases := []struct {
			in   string
			want Policy
		}{
			{"Unsynchronized", Unsynchronized},
			{"none", Unsynchronized},
			{"mutexguarded", MutexGuarded},
			{" Mutex ", MutexGuarded},
			{"ATOMICHARDWARE", AtomicHardware},
			{"atomic", AtomicHardware},
		}
		for _, c := range cases {
			got, err := ParsePolicy(c.in)
			require.NoError(t, err, c.in)
			assert.Equal(t, c.want, got, c.in)
		}

		_, err := ParsePolicy("spinlock")
		assert.Error(t, err)
	})
}

func newCounter(t testing.TB, p Policy) Counter {
	t.Helper()
	counter, err := New(p)
	require.NoError(t, err)
	return counter
}

func assertCounter(t testing.TB, got Counter, want uint64) {
	t.Helper()
	if got.Value() != want {
		t.Errorf("got %d, want %d", got.Value(), want)
	}
}
