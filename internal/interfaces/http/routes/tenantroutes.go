package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/handlers"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
)

// TenantRouteConfig holds dependencies for tenant administration routes:
// user management, access mappings, and organization settings.
type TenantRouteConfig struct {
	UserHandler      *handlers.UserHandler
	MappingHandler   *handlers.MappingHandler
	TenantHandler    *handlers.TenantHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
}

// SetupTenantRoutes configures tenant-scoped administration routes. All of
// them require the tenant admin role; mappings feed the visibility resolver
// and must not be editable by the users they grant access to.
func SetupTenantRoutes(engine *gin.Engine, cfg *TenantRouteConfig) {
	adminOnly := cfg.AuthMiddleware.RequireRole(user.RoleAdmin, user.RoleSuperAdmin)

	users := engine.Group("/api/tenant/:tenantId/users")
	users.Use(cfg.TenantMiddleware.ResolveTenant(), cfg.AuthMiddleware.RequireAuth(), adminOnly)
	{
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("", cfg.UserHandler.ListUsers)
		users.GET("/:userId", cfg.UserHandler.GetUser)
		users.PATCH("/:userId", cfg.UserHandler.UpdateUser)
	}

	mappings := engine.Group("/api/tenant/:tenantId/mappings")
	mappings.Use(cfg.TenantMiddleware.ResolveTenant(), cfg.AuthMiddleware.RequireAuth(), adminOnly)
	{
		mappings.POST("/supervisors", cfg.MappingHandler.CreateSupervisorMapping)
		mappings.DELETE("/supervisors/:mappingId", cfg.MappingHandler.DeleteSupervisorMapping)
		mappings.POST("/aliases", cfg.MappingHandler.CreateAliasMapping)
		mappings.PATCH("/aliases/:mappingId", cfg.MappingHandler.UpdateAliasWindow)
		mappings.POST("/collaborators", cfg.MappingHandler.CreateCollaboratorMapping)
		mappings.POST("/domains", cfg.MappingHandler.CreateDomainMapping)
		mappings.DELETE("/domains/:mappingId", cfg.MappingHandler.DeleteDomainMapping)
	}

	settings := engine.Group("/api/tenant/:tenantId/settings")
	settings.Use(cfg.TenantMiddleware.ResolveTenant(), cfg.AuthMiddleware.RequireAuth())
	{
		settings.GET("", cfg.TenantHandler.GetOrgSettings)
		settings.PATCH("", adminOnly, cfg.TenantHandler.UpdateOrgSettings)
	}
}
