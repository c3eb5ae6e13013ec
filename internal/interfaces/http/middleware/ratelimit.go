package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

// RateLimiter is a Redis-backed fixed-window counter per client IP. All
// instances share the same counters, so the limit holds across replicas.
// Redis unavailability fails open.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

const defaultRateLimitWindow = time.Minute

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	// A zero or negative window would break the bucket arithmetic.
	if window < time.Second {
		window = defaultRateLimitWindow
	}
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		windowBucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("ratelimit:ip:%s:%d", c.ClientIP(), windowBucket)

		ctx := context.Background()
		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
