// Package repository holds the GORM-backed implementations of the domain
// repository interfaces. Tenant-scoped repositories take the tenant schema on
// every call and address tables as "<schema>.<table>".
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

const tenantsTable = constants.CommonSchema + ".tenants"

// TenantRepository persists tenant metadata in the common schema.
type TenantRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepository{db: db, logger: logger}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	model := mappers.TenantToModel(t)
	if err := r.db.WithContext(ctx).Table(tenantsTable).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tenant", "schema_name", t.SchemaName, "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	t.ID = model.ID
	return nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	err := r.db.WithContext(ctx).Table(tenantsTable).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by id: %w", err)
	}
	return mappers.TenantToEntity(&model), nil
}

func (r *TenantRepository) GetBySchemaName(ctx context.Context, schemaName string) (*tenant.Tenant, error) {
	var model models.TenantModel
	err := r.db.WithContext(ctx).Table(tenantsTable).Where("schema_name = ?", schemaName).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by schema name: %w", err)
	}
	return mappers.TenantToEntity(&model), nil
}

func (r *TenantRepository) List(ctx context.Context, offset, limit int) ([]*tenant.Tenant, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(tenantsTable).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	var ms []*models.TenantModel
	err := r.db.WithContext(ctx).Table(tenantsTable).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}
	return mappers.TenantsToEntities(ms), total, nil
}

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	model := mappers.TenantToModel(t)
	// Select forces zero-valued columns (is_active=false) to be written.
	result := r.db.WithContext(ctx).Table(tenantsTable).Where("id = ?", t.ID).
		Select("name", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update tenant", "id", t.ID, "error", result.Error)
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tenant.ErrTenantNotFound
	}
	return nil
}

func (r *TenantRepository) ExistsBySchemaName(ctx context.Context, schemaName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(tenantsTable).Where("schema_name = ?", schemaName).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tenant existence: %w", err)
	}
	return count > 0, nil
}
