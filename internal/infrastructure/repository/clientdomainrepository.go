package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// ClientDomainRepository persists client domains inside a tenant schema.
type ClientDomainRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewClientDomainRepository(db *gorm.DB, logger logger.Interface) contact.ClientDomainRepository {
	return &ClientDomainRepository{db: db, logger: logger}
}

func (r *ClientDomainRepository) table(schema string) string {
	return schema + ".client_domains"
}

func (r *ClientDomainRepository) GetByID(ctx context.Context, schema string, id uint) (*contact.ClientDomain, error) {
	var model models.ClientDomainModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contact.ErrClientDomainNotFound
		}
		return nil, fmt.Errorf("failed to get client domain: %w", err)
	}
	return mappers.ClientDomainToEntity(&model), nil
}

func (r *ClientDomainRepository) List(ctx context.Context, schema string, offset, limit int) ([]*contact.ClientDomain, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count client domains: %w", err)
	}

	var ms []*models.ClientDomainModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Order("domain ASC").
		Offset(offset).
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list client domains: %w", err)
	}
	return mappers.ClientDomainsToEntities(ms), total, nil
}

func (r *ClientDomainRepository) SetSuppressed(ctx context.Context, schema string, id uint, suppressed bool) error {
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", id).
		Updates(map[string]any{"is_suppressed": suppressed, "updated_at": biztime.NowUTC()})
	if result.Error != nil {
		r.logger.Errorw("failed to set client domain suppression", "schema", schema, "id", id, "error", result.Error)
		return fmt.Errorf("failed to set client domain suppression: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.ErrClientDomainNotFound
	}
	return nil
}
