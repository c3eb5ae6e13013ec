package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// DomainMappingRepository persists provider-user to client-domain grants
// inside a tenant schema.
type DomainMappingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDomainMappingRepository(db *gorm.DB, logger logger.Interface) contact.DomainMappingRepository {
	return &DomainMappingRepository{db: db, logger: logger}
}

func (r *DomainMappingRepository) table(schema string) string {
	return schema + ".domain_mappings"
}

func (r *DomainMappingRepository) Create(ctx context.Context, schema string, m *contact.DomainMapping) error {
	model := mappers.DomainMappingToModel(m)
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create domain mapping",
			"schema", schema, "client_domain_id", m.ClientDomainID, "provider_user_id", m.ProviderUserID, "error", err)
		return fmt.Errorf("failed to create domain mapping: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *DomainMappingRepository) ListDomainIDsByUserIDs(ctx context.Context, schema string, userIDs []uint) ([]uint, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("provider_user_id IN ? AND is_deleted = ?", userIDs, false).
		Distinct().
		Pluck("client_domain_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mapped domains: %w", err)
	}
	return ids, nil
}

func (r *DomainMappingRepository) ListUserIDsByDomainID(ctx context.Context, schema string, domainID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("client_domain_id = ? AND is_deleted = ?", domainID, false).
		Pluck("provider_user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mapped users: %w", err)
	}
	return ids, nil
}

func (r *DomainMappingRepository) SoftDelete(ctx context.Context, schema string, id uint) error {
	result := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete domain mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.ErrDomainMappingNotFound
	}
	return nil
}
