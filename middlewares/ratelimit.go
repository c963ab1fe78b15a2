package middlewares

import (
	"context"
	"log"
	"time"

	"hospitality/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const msgTooManyRequests = "Too many requests from this IP, please try again later."

// RateLimiter is a fixed window counter per client IP kept in Redis.
type RateLimiter struct {
	rdb    redis.UniversalClient
	max    int64
	window time.Duration
	prefix string
}

func NewRateLimiter(rdb redis.UniversalClient, max int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, max: int64(max), window: window, prefix: "ratelimit:"}
}

// Allow counts one hit for key in the current window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.max, nil
}

// Handler fails open when Redis is unavailable.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("ratelimit: redis error: %v", err)
			c.Next()
			return
		}
		if !ok {
			resp.TooManyRequests(c, msgTooManyRequests)
			return
		}
		c.Next()
	}
}
