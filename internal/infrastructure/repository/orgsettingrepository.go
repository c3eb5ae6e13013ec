package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// OrgSettingRepository reads the single organization settings row in a tenant
// schema. The row is seeded during schema provisioning.
type OrgSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewOrgSettingRepository(db *gorm.DB, logger logger.Interface) tenant.OrgSettingRepository {
	return &OrgSettingRepository{db: db, logger: logger}
}

func (r *OrgSettingRepository) table(schema string) string {
	return schema + ".organization_settings"
}

func (r *OrgSettingRepository) Get(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
	var model models.OrgSettingModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Order("id").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Provisioning seeds the row; treat a missing row as defaults.
			return &tenant.OrgSetting{}, nil
		}
		return nil, fmt.Errorf("failed to get organization settings: %w", err)
	}
	return mappers.OrgSettingToEntity(&model), nil
}

func (r *OrgSettingRepository) Update(ctx context.Context, schema string, setting *tenant.OrgSetting) error {
	model := mappers.OrgSettingToModel(setting)
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", setting.ID).
		Select("email_access_start_date", "email_access_end_date", "onboarding_completed_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update organization settings", "schema", schema, "error", result.Error)
		return fmt.Errorf("failed to update organization settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
			return fmt.Errorf("failed to create organization settings: %w", err)
		}
		setting.ID = model.ID
	}
	return nil
}
