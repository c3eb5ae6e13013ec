package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/handlers"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for platform administration routes.
type AdminRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	TenantHandler  *handlers.TenantHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAdminRoutes configures the platform admin surface. Admin accounts
// live in the common schema, so the whole group binds it up front; tenant
// tokens fail the schema check in RequireAuth.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(middleware.UseCommonSchema())
	{
		admin.POST("/auth/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		admin.POST("/auth/refresh", cfg.AuthHandler.RefreshToken)
		admin.POST("/auth/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)

		tenants := admin.Group("/tenants")
		tenants.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRole(user.RoleSuperAdmin))
		{
			tenants.POST("", cfg.TenantHandler.CreateTenant)
			tenants.GET("", cfg.TenantHandler.ListTenants)
			tenants.GET("/:id", cfg.TenantHandler.GetTenant)
			tenants.PATCH("/:id", cfg.TenantHandler.UpdateTenant)
		}
	}
}
