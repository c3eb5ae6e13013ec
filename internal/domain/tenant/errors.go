package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant is not found
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrDuplicateSchema is returned when a tenant schema already exists
	ErrDuplicateSchema = errors.New("tenant schema already exists")

	// ErrInvalidAdminEmail is returned when the organization admin email is malformed
	ErrInvalidAdminEmail = errors.New("invalid organization admin email")

	// ErrInvalidSchemaID is returned when a base64 schema identifier cannot be decoded
	ErrInvalidSchemaID = errors.New("invalid tenant schema identifier")

	// ErrNameRequired is returned when the tenant name is missing
	ErrNameRequired = errors.New("tenant name is required")

	// ErrTenantInactive is returned when a request targets a deactivated tenant
	ErrTenantInactive = errors.New("tenant is inactive")
)
