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

// ContactRepository persists contacts inside a tenant schema.
type ContactRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewContactRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepository{db: db, logger: logger}
}

func (r *ContactRepository) table(schema string) string {
	return schema + ".contacts"
}

func (r *ContactRepository) GetByID(ctx context.Context, schema string, id uint) (*contact.Contact, error) {
	var model models.ContactModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contact.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return mappers.ContactToEntity(&model), nil
}

func (r *ContactRepository) List(ctx context.Context, schema string, filter contact.Filter) ([]*contact.Contact, int64, error) {
	query := r.db.WithContext(ctx).Table(r.table(schema))

	if len(filter.ClientDomainIDs) > 0 {
		query = query.Where("client_domain_id IN ?", filter.ClientDomainIDs)
	}
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var ms []*models.ContactModel
	err := query.Order("email ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	return mappers.ContactsToEntities(ms), total, nil
}

func (r *ContactRepository) Update(ctx context.Context, schema string, c *contact.Contact) error {
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", c.ID).
		Updates(map[string]any{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"title":      c.Title,
			"phone":      c.Phone,
			"updated_at": c.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update contact", "schema", schema, "id", c.ID, "error", result.Error)
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) SoftDelete(ctx context.Context, schema string, id uint) error {
	result := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "updated_at": biztime.NowUTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}
