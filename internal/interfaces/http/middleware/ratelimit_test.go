package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_DefaultsInvalidWindow(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	for _, window := range []time.Duration{0, -time.Minute, 500 * time.Millisecond} {
		rl := NewRateLimiter(client, 10, window)
		assert.Equal(t, defaultRateLimitWindow, rl.window)
	}

	rl := NewRateLimiter(client, 10, 30*time.Second)
	assert.Equal(t, 30*time.Second, rl.window)
}

func TestRateLimiter_ZeroWindowDoesNotPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Unreachable address, so the limiter fails open. The bucket arithmetic
	// runs before the Redis call either way.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	rl := NewRateLimiter(client, 10, 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	assert.NotPanics(t, func() { rl.Limit()(c) })
	assert.Equal(t, http.StatusOK, w.Code)
}
