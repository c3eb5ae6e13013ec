package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService usecases.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService usecases.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and binds the caller's identity to
// the request context. Tokens issued for one tenant never authorize another;
// the claims schema must match the schema the tenant middleware resolved.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.ParseAccess(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify access token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if schema := c.GetString(constants.ContextKeyTenantSchema); schema != "" && claims.Schema != schema {
			utils.ErrorResponse(c, http.StatusForbidden, "token does not belong to this organization")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// RequireRole gates a route to the given roles. RequireAuth must run first.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if !allowed[role] {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient role for this operation")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's ID from the request context.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CallerRole returns the authenticated user's role from the request context.
func CallerRole(c *gin.Context) user.Role {
	return user.Role(c.GetString(constants.ContextKeyUserRole))
}

// TenantSchema returns the resolved tenant schema from the request context.
func TenantSchema(c *gin.Context) string {
	return c.GetString(constants.ContextKeyTenantSchema)
}
