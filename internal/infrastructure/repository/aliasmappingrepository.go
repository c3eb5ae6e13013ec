package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// AliasMappingRepository persists delegated mailbox grants inside a tenant
// schema. Mapping history rides along as a jsonb column.
type AliasMappingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAliasMappingRepository(db *gorm.DB, logger logger.Interface) user.AliasMappingRepository {
	return &AliasMappingRepository{db: db, logger: logger}
}

func (r *AliasMappingRepository) table(schema string) string {
	return schema + ".alias_mappings"
}

func (r *AliasMappingRepository) Create(ctx context.Context, schema string, m *user.AliasMapping) error {
	model, err := mappers.AliasMappingToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map alias mapping: %w", err)
	}
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create alias mapping",
			"schema", schema, "user_id", m.UserID, "alias_user_id", m.AliasUserID, "error", err)
		return fmt.Errorf("failed to create alias mapping: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *AliasMappingRepository) GetByID(ctx context.Context, schema string, id uint) (*user.AliasMapping, error) {
	var model models.AliasMappingModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get alias mapping: %w", err)
	}
	return mappers.AliasMappingToEntity(&model)
}

func (r *AliasMappingRepository) ListActiveForUser(ctx context.Context, schema string, userID uint, at time.Time) ([]*user.AliasMapping, error) {
	var ms []*models.AliasMappingModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Where("alias_start_date IS NULL OR alias_start_date <= ?", at).
		Where("alias_end_date IS NULL OR alias_end_date >= ?", at).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list alias mappings: %w", err)
	}

	out := make([]*user.AliasMapping, 0, len(ms))
	for _, m := range ms {
		entity, err := mappers.AliasMappingToEntity(m)
		if err != nil {
			r.logger.Errorw("failed to map alias mapping row", "schema", schema, "id", m.ID, "error", err)
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *AliasMappingRepository) Update(ctx context.Context, schema string, m *user.AliasMapping) error {
	model, err := mappers.AliasMappingToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map alias mapping: %w", err)
	}
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", m.ID).
		Select("alias_start_date", "alias_end_date",
			"historical_email_access_start_date", "historical_email_access_end_date",
			"mapping_history", "is_deleted", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update alias mapping", "schema", schema, "id", m.ID, "error", result.Error)
		return fmt.Errorf("failed to update alias mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrMappingNotFound
	}
	return nil
}
