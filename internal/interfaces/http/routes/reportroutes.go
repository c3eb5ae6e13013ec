package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/handlers"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
)

// ReportRouteConfig holds dependencies for usage and search report routes.
type ReportRouteConfig struct {
	ReportHandler    *handlers.ReportHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
}

// SetupReportRoutes configures report routes. Reports expose per-user
// activity, so members cannot read them.
func SetupReportRoutes(engine *gin.Engine, cfg *ReportRouteConfig) {
	reports := engine.Group("/api/tenant/:tenantId/reports")
	reports.Use(
		cfg.TenantMiddleware.ResolveTenant(),
		cfg.AuthMiddleware.RequireAuth(),
		cfg.AuthMiddleware.RequireRole(user.RoleSupervisor, user.RoleAdmin, user.RoleSuperAdmin),
	)
	{
		reports.GET("/usage", cfg.ReportHandler.GetUsageReport)
		reports.GET("/search", cfg.ReportHandler.GetSearchReport)
	}
}
