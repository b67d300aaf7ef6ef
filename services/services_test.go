package services

import (
	"context"
	"sync"

	"surveyapi/models"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
func boolPtr(b bool) *bool    { return &b }

// memoryCache is an in-process StatisticCache that records invalidations.
type memoryCache struct {
	mu          sync.Mutex
	items       map[uint]models.Statistic
	invalidated []uint
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[uint]models.Statistic{}}
}

func (c *memoryCache) Get(_ context.Context, questionID uint) (*models.Statistic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stat, ok := c.items[questionID]
	if !ok {
		return nil, false
	}
	return &stat, true
}

func (c *memoryCache) Set(_ context.Context, stat *models.Statistic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[stat.QuestionID] = *stat
}

func (c *memoryCache) Invalidate(_ context.Context, questionID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, questionID)
	c.invalidated = append(c.invalidated, questionID)
}

// racingCache runs beforeSet once, just before the first Set stores its value,
// to interleave a concurrent write between a read and the cache fill.
type racingCache struct {
	*memoryCache
	beforeSet func()
}

func (c *racingCache) Set(ctx context.Context, stat *models.Statistic) {
	if hook := c.beforeSet; hook != nil {
		c.beforeSet = nil
		hook()
	}
	c.memoryCache.Set(ctx, stat)
}
