package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/eventlog"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/handlers"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
)

// ContactRouteConfig holds dependencies for contact and client domain routes.
type ContactRouteConfig struct {
	ContactHandler   *handlers.ContactHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
	Pipeline         *eventlog.Pipeline
}

// SetupContactRoutes configures contact browsing, activity, and export
// routes. Event capture runs on this group; its route templates are the
// capture table keys.
func SetupContactRoutes(engine *gin.Engine, cfg *ContactRouteConfig) {
	tenant := engine.Group("/api/tenant/:tenantId")
	tenant.Use(
		cfg.TenantMiddleware.ResolveTenant(),
		cfg.AuthMiddleware.RequireAuth(),
		middleware.EventCapture(cfg.Pipeline),
	)
	{
		tenant.GET("/contacts", cfg.ContactHandler.ListContacts)
		tenant.GET("/contacts/export", cfg.ContactHandler.ExportContacts)
		tenant.GET("/contacts/:contactId/activity", cfg.ContactHandler.GetContactActivity)
		tenant.GET("/contacts/:contactId/attachments/export", cfg.ContactHandler.ExportContactAttachments)

		tenant.GET("/client-domains", cfg.ContactHandler.ListClientDomains)
		tenant.GET("/client-domains/:domainId", cfg.ContactHandler.GetClientDomain)
	}
}
