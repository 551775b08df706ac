package harness

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// History keeps reported runs in memory for a limited time.
type History struct {
	c *cache.Cache
}

// NewHistory 建立 history，ttl 為 0 時紀錄不會過期
func NewHistory(ttl time.Duration) *History {
	if ttl == 0 {
		ttl = cache.NoExpiration
	}
	cleanup := ttl
	if ttl == cache.NoExpiration {
		cleanup = 0
	}
	return &History{c: cache.New(ttl, cleanup)}
}

func (h *History) Record(r Result) {
	h.c.Set(r.RunID.String(), r, cache.DefaultExpiration)
}

func (h *History) Get(id uuid.UUID) (Result, bool) {
	v, found := h.c.Get(id.String())
	if !found {
		return Result{}, false
	}
	return v.(Result), true
}

// All returns the unexpired runs, oldest first.
func (h *History) All() []Result {
	items := h.c.Items()
	out := make([]Result, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Result))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

func (h *History) Len() int {
	return h.c.ItemCount()
}
