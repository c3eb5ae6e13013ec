// Package routes registers the HTTP route groups. Route templates on the
// tenant group are also keys into the event capture table; changing a path
// here changes which requests are tracked.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/interfaces/http/handlers"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
	RateLimiter      *middleware.RateLimiter
}

// SetupAuthRoutes configures tenant-scoped authentication routes plus the
// shared OAuth callback. The callback is not tenant-scoped because the
// provider redirects to a single registered URL; the flow state carries the
// tenant schema.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/tenant/:tenantId/auth")
	auth.Use(cfg.TenantMiddleware.ResolveTenant())
	{
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/oauth/:provider", cfg.RateLimiter.Limit(), cfg.AuthHandler.InitiateOAuthLogin)
	}

	engine.GET("/api/auth/oauth/callback", cfg.AuthHandler.HandleOAuthCallback)
}
