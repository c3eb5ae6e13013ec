// Package http assembles the gin engine: wiring repositories through use
// cases into handlers and registering the route groups.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/application/eventlog"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/auth"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/cache"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/config"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/routes"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// Router owns the gin engine and the event pipeline whose lifecycle is tied
// to the HTTP surface.
type Router struct {
	engine   *gin.Engine
	pipeline *eventlog.Pipeline
}

// NewRouter wires the full HTTP stack. The caller owns db and redisClient;
// the router owns the event pipeline and drains it in Shutdown.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)

	repos := newRepositories(db, log)
	pipeline := eventlog.NewPipeline(&cfg.Pipeline, repos.eventLogs, repos.usageReports, repos.searchReports, log)
	hdlrs := buildHandlers(cfg, db, redisClient, repos, log)

	authMW := middleware.NewAuthMiddleware(auth.NewJWTService(&cfg.Auth.JWT), log)
	tenantMW := middleware.NewTenantMiddleware(cache.NewTenantCache(redisClient, repos.tenants, log), log)
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.Limit, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	engine.GET("/health", hdlrs.health.Check)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:      hdlrs.auth,
		AuthMiddleware:   authMW,
		TenantMiddleware: tenantMW,
		RateLimiter:      rateLimiter,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AuthHandler:    hdlrs.auth,
		TenantHandler:  hdlrs.tenant,
		AuthMiddleware: authMW,
		RateLimiter:    rateLimiter,
	})
	routes.SetupTenantRoutes(engine, &routes.TenantRouteConfig{
		UserHandler:      hdlrs.user,
		MappingHandler:   hdlrs.mapping,
		TenantHandler:    hdlrs.tenant,
		AuthMiddleware:   authMW,
		TenantMiddleware: tenantMW,
	})
	routes.SetupContactRoutes(engine, &routes.ContactRouteConfig{
		ContactHandler:   hdlrs.contact,
		AuthMiddleware:   authMW,
		TenantMiddleware: tenantMW,
		Pipeline:         pipeline,
	})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:    hdlrs.report,
		AuthMiddleware:   authMW,
		TenantMiddleware: tenantMW,
	})

	return &Router{engine: engine, pipeline: pipeline}
}

// Engine exposes the configured gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Shutdown drains the buffered event pipeline. Call after the HTTP server
// has stopped accepting requests and before closing the database.
func (r *Router) Shutdown() {
	r.pipeline.Close()
}
