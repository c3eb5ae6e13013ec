package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// SupervisorMappingRepository persists supervisor -> subordinate edges inside
// a tenant schema.
type SupervisorMappingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSupervisorMappingRepository(db *gorm.DB, logger logger.Interface) user.SupervisorMappingRepository {
	return &SupervisorMappingRepository{db: db, logger: logger}
}

func (r *SupervisorMappingRepository) table(schema string) string {
	return schema + ".supervisor_mappings"
}

func (r *SupervisorMappingRepository) Create(ctx context.Context, schema string, m *user.SupervisorMapping) error {
	model := mappers.SupervisorMappingToModel(m)
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create supervisor mapping",
			"schema", schema, "supervisor_id", m.SupervisorID, "user_id", m.UserID, "error", err)
		return fmt.Errorf("failed to create supervisor mapping: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *SupervisorMappingRepository) ListSubordinateIDs(ctx context.Context, schema string, supervisorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("supervisor_id = ? AND is_deleted = ?", supervisorID, false).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subordinates: %w", err)
	}
	return ids, nil
}

func (r *SupervisorMappingRepository) ListSupervisorIDs(ctx context.Context, schema string, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Pluck("supervisor_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}
	return ids, nil
}

func (r *SupervisorMappingRepository) SoftDelete(ctx context.Context, schema string, id uint) error {
	result := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "updated_at": biztime.NowUTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to delete supervisor mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrMappingNotFound
	}
	return nil
}
