// Package cache memoizes engine results for hosts that revisit the same
// instants.
package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Faultbox/domesim/internal/engine"
	"github.com/Faultbox/domesim/internal/engine/orbit"
)

// sunKey identifies a sun state. The sun ignores the moon phase, so every
// moon phase at the same day and hour shares one entry.
type sunKey struct {
	day  int
	hour float64
}

// SunCache is a bounded LRU of sun body states. Safe for concurrent use.
type SunCache struct {
	lru    *lru.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewSunCache returns a cache holding at most size entries.
func NewSunCache(size int) (*SunCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating sun cache: %w", err)
	}
	return &SunCache{lru: c}, nil
}

// GetOrCompute returns the cached sun state for tp, or computes it with fn
// and stores it. Errors are not cached.
func (c *SunCache) GetOrCompute(tp orbit.TimeParameters, fn func(orbit.TimeParameters) (engine.BodyState, error)) (engine.BodyState, error) {
	key := sunKey{day: tp.DayOfYear, hour: tp.HourOfDay}
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v.(engine.BodyState), nil
	}
	c.misses.Add(1)

	s, err := fn(tp)
	if err != nil {
		return engine.BodyState{}, err
	}
	c.lru.Add(key, s)
	return s, nil
}

// Len returns the number of cached entries.
func (c *SunCache) Len() int {
	return c.lru.Len()
}

// Stats returns the hit and miss counts so far.
func (c *SunCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
