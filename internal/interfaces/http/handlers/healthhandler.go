package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Check handles GET /health. The endpoint degrades to 503 when either
// backing store is unreachable so load balancers stop routing here.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	dbStatus := "up"
	if h.db == nil {
		dbStatus = "down"
	} else if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	if h.redis == nil || h.redis.Ping(ctx).Err() != nil {
		redisStatus = "down"
	}

	status := http.StatusOK
	overall := "healthy"
	if dbStatus == "down" || redisStatus == "down" {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status":  overall,
		"service": "recovvo",
		"checks": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
