package usecases

import (
	"context"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type mockTenantRepo struct {
	createFunc             func(ctx context.Context, t *tenant.Tenant) error
	getByIDFunc            func(ctx context.Context, id uint) (*tenant.Tenant, error)
	getBySchemaNameFunc    func(ctx context.Context, schemaName string) (*tenant.Tenant, error)
	listFunc               func(ctx context.Context, offset, limit int) ([]*tenant.Tenant, int64, error)
	updateFunc             func(ctx context.Context, t *tenant.Tenant) error
	existsBySchemaNameFunc func(ctx context.Context, schemaName string) (bool, error)
}

func (m *mockTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error {
	return m.createFunc(ctx, t)
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTenantRepo) GetBySchemaName(ctx context.Context, schemaName string) (*tenant.Tenant, error) {
	return m.getBySchemaNameFunc(ctx, schemaName)
}

func (m *mockTenantRepo) List(ctx context.Context, offset, limit int) ([]*tenant.Tenant, int64, error) {
	return m.listFunc(ctx, offset, limit)
}

func (m *mockTenantRepo) Update(ctx context.Context, t *tenant.Tenant) error {
	return m.updateFunc(ctx, t)
}

func (m *mockTenantRepo) ExistsBySchemaName(ctx context.Context, schemaName string) (bool, error) {
	return m.existsBySchemaNameFunc(ctx, schemaName)
}

type mockOrgSettingRepo struct {
	getFunc    func(ctx context.Context, schema string) (*tenant.OrgSetting, error)
	updateFunc func(ctx context.Context, schema string, setting *tenant.OrgSetting) error
}

func (m *mockOrgSettingRepo) Get(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
	return m.getFunc(ctx, schema)
}

func (m *mockOrgSettingRepo) Update(ctx context.Context, schema string, setting *tenant.OrgSetting) error {
	return m.updateFunc(ctx, schema, setting)
}

type mockProvisioner struct {
	provisionFunc func(ctx context.Context, schemaName string) error
}

func (m *mockProvisioner) Provision(ctx context.Context, schemaName string) error {
	return m.provisionFunc(ctx, schemaName)
}

type mockMailer struct {
	sendFunc func(ctx context.Context, adminEmail, tenantName, schemaID string) error
}

func (m *mockMailer) SendTenantOnboarding(ctx context.Context, adminEmail, tenantName, schemaID string) error {
	return m.sendFunc(ctx, adminEmail, tenantName, schemaID)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
