package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"surveyapi/models"
	"surveyapi/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// StatisticCache is a read-through cache for per-question statistics.
// Implementations must treat every failure as a miss.
type StatisticCache interface {
	Get(ctx context.Context, questionID uint) (*models.Statistic, bool)
	Set(ctx context.Context, stat *models.Statistic)
	Invalidate(ctx context.Context, questionID uint)
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, uint) (*models.Statistic, bool) {
	return nil, false
}

func (NoopCache) Set(context.Context, *models.Statistic) {}

func (NoopCache) Invalidate(context.Context, uint) {}

// RedisCache keeps statistics as JSON values with a TTL.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache creates a cache on an existing client.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func statisticKey(questionID uint) string {
	return fmt.Sprintf("survey:statistic:%d", questionID)
}

func (c *RedisCache) Get(ctx context.Context, questionID uint) (*models.Statistic, bool) {
	raw, err := c.rdb.Get(ctx, statisticKey(questionID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warnf("Statistic cache read failed for question %d: %v", questionID, err)
		}
		return nil, false
	}
	var stat models.Statistic
	if err := json.Unmarshal(raw, &stat); err != nil {
		logger.Warnf("Dropping corrupt statistic cache entry for question %d: %v", questionID, err)
		c.Invalidate(ctx, questionID)
		return nil, false
	}
	return &stat, true
}

func (c *RedisCache) Set(ctx context.Context, stat *models.Statistic) {
	raw, err := json.Marshal(stat)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, statisticKey(stat.QuestionID), raw, c.ttl).Err(); err != nil {
		logger.Warnf("Statistic cache write failed for question %d: %v", stat.QuestionID, err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, questionID uint) {
	if err := c.rdb.Del(ctx, statisticKey(questionID)).Err(); err != nil {
		logger.Warnf("Statistic cache invalidation failed for question %d: %v", questionID, err)
	}
}

// Connect returns a RedisCache when addr is set and reachable, otherwise a NoopCache.
// The returned close function releases the client.
func Connect(ctx context.Context, addr, password string, db int, ttl time.Duration) (StatisticCache, func() error) {
	if addr == "" {
		logger.Infof("REDIS_ADDR not set, statistics cache disabled")
		return NoopCache{}, func() error { return nil }
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warnf("Redis at %s unreachable, statistics cache disabled: %v", addr, err)
		rdb.Close()
		return NoopCache{}, func() error { return nil }
	}
	logger.Infof("Connected to Redis at %s for statistics cache (ttl %v)", addr, ttl)
	return NewRedisCache(rdb, ttl), rdb.Close
}
