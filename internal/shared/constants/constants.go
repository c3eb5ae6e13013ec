package constants

// Context keys set by middleware and read by handlers.
const (
	ContextKeyUserID       = "user_id"
	ContextKeySessionID    = "session_id"
	ContextKeyUserRole     = "user_role"
	ContextKeyTenantSchema = "tenant_schema"
	ContextKeyVisibility   = "visibility_result"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CommonSchema is the shared schema holding tenant metadata and super admins.
const CommonSchema = "common"
