package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter is a fixed-window counter over redis. The first hit in a window
// creates the key with a TTL; once the count passes the limit, further hits
// are rejected until the window expires.
type Limiter struct {
	rdb    *redis.Client
	logger *zap.Logger
	limit  int64
	window time.Duration
}

func NewLimiter(rdb *redis.Client, logger *zap.Logger, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		rdb:    rdb,
		logger: logger,
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the caller identified by key may proceed. Redis
// being unreachable fails open: login availability must not depend on the
// cache.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
		return true
	}

	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("Failed to set rate limit TTL", zap.Error(err))
		}
	}

	return count <= l.limit
}
