package tenant

import "context"

// Repository manages tenant metadata rows in the common schema.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetBySchemaName(ctx context.Context, schemaName string) (*Tenant, error)
	List(ctx context.Context, offset, limit int) ([]*Tenant, int64, error)
	Update(ctx context.Context, t *Tenant) error
	ExistsBySchemaName(ctx context.Context, schemaName string) (bool, error)
}

// OrgSettingRepository reads and writes per-tenant organization settings.
type OrgSettingRepository interface {
	Get(ctx context.Context, schema string) (*OrgSetting, error)
	Update(ctx context.Context, schema string, setting *OrgSetting) error
}

// SchemaProvisioner creates and initializes a tenant's dedicated schema.
type SchemaProvisioner interface {
	Provision(ctx context.Context, schemaName string) error
}
