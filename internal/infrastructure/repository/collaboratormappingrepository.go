package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// CollaboratorMappingRepository persists peer visibility grants inside a
// tenant schema.
type CollaboratorMappingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCollaboratorMappingRepository(db *gorm.DB, logger logger.Interface) user.CollaboratorMappingRepository {
	return &CollaboratorMappingRepository{db: db, logger: logger}
}

func (r *CollaboratorMappingRepository) table(schema string) string {
	return schema + ".collaborator_mappings"
}

func (r *CollaboratorMappingRepository) Create(ctx context.Context, schema string, m *user.CollaboratorMapping) error {
	model := mappers.CollaboratorMappingToModel(m)
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create collaborator mapping",
			"schema", schema, "user_id", m.UserID, "collaborator_id", m.CollaboratorID, "error", err)
		return fmt.Errorf("failed to create collaborator mapping: %w", err)
	}
	m.ID = model.ID
	return nil
}

// ListActivePeerIDs matches collaborations where userID appears on either
// side and returns the opposite side of each edge.
func (r *CollaboratorMappingRepository) ListActivePeerIDs(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error) {
	var ms []*models.CollaboratorMappingModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("(user_id = ? OR collaborator_id = ?) AND is_active = ?", userID, userID, true).
		Where("start_date IS NULL OR start_date <= ?", at).
		Where("end_date IS NULL OR end_date >= ?", at).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborator mappings: %w", err)
	}

	peers := make([]uint, 0, len(ms))
	for _, m := range ms {
		if m.UserID == userID {
			peers = append(peers, m.CollaboratorID)
		} else {
			peers = append(peers, m.UserID)
		}
	}
	return peers, nil
}

func (r *CollaboratorMappingRepository) Update(ctx context.Context, schema string, m *user.CollaboratorMapping) error {
	model := mappers.CollaboratorMappingToModel(m)
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", m.ID).
		Select("start_date", "end_date", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update collaborator mapping", "schema", schema, "id", m.ID, "error", result.Error)
		return fmt.Errorf("failed to update collaborator mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrMappingNotFound
	}
	return nil
}
