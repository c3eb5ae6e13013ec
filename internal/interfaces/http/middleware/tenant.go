package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

// TenantResolver looks up tenants by schema name, typically through a cache.
type TenantResolver interface {
	GetBySchemaName(ctx context.Context, schemaName string) (*tenant.Tenant, error)
}

type TenantMiddleware struct {
	resolver TenantResolver
	logger   logger.Interface
}

func NewTenantMiddleware(resolver TenantResolver, logger logger.Interface) *TenantMiddleware {
	return &TenantMiddleware{resolver: resolver, logger: logger}
}

// ResolveTenant decodes the :tenantId path segment, verifies the tenant
// exists and is active, and binds the schema to the request context.
func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		schema, err := tenant.DecodeSchema(c.Param("tenantId"))
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid tenant identifier")
			c.Abort()
			return
		}

		t, err := m.resolver.GetBySchemaName(c.Request.Context(), schema)
		if err != nil {
			if errors.Is(err, tenant.ErrTenantNotFound) {
				utils.ErrorResponse(c, http.StatusNotFound, "organization not found")
			} else {
				m.logger.Errorw("failed to resolve tenant", "schema", schema, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve organization")
			}
			c.Abort()
			return
		}

		if !t.IsActive {
			utils.ErrorResponse(c, http.StatusForbidden, "organization is deactivated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTenantSchema, t.SchemaName)
		c.Next()
	}
}

// UseCommonSchema binds the shared schema to the request context. Platform
// admin routes run against the common schema instead of a tenant schema.
func UseCommonSchema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyTenantSchema, constants.CommonSchema)
		c.Next()
	}
}
