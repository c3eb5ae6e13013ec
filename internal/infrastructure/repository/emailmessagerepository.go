package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// EmailMessageRepository reads ingested messages inside a tenant schema.
// Activity queries are always bounded by the caller's resolved access scopes,
// one window per provider user; an empty scope set returns nothing.
type EmailMessageRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEmailMessageRepository(db *gorm.DB, logger logger.Interface) contact.EmailMessageRepository {
	return &EmailMessageRepository{db: db, logger: logger}
}

func (r *EmailMessageRepository) table(schema string) string {
	return schema + ".email_messages"
}

func (r *EmailMessageRepository) ListByContact(ctx context.Context, schema string, contactID uint, scopes []contact.MessageScope, offset, limit int) ([]*contact.EmailMessage, int64, error) {
	if len(scopes) == 0 {
		return nil, 0, nil
	}

	// One predicate per scope, ORed together: each provider user's messages
	// are bounded by that user's own window only.
	var scoped *gorm.DB
	for _, s := range scopes {
		cond := r.db.Where("provider_user_id = ?", s.ProviderUserID)
		if s.From != nil {
			cond = cond.Where("sent_at >= ?", *s.From)
		}
		if s.To != nil {
			cond = cond.Where("sent_at <= ?", *s.To)
		}
		if scoped == nil {
			scoped = cond
		} else {
			scoped = scoped.Or(cond)
		}
	}

	query := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("contact_id = ?", contactID).
		Where(scoped)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count email messages: %w", err)
	}

	var ms []*models.EmailMessageModel
	err := query.Order("sent_at DESC").Offset(offset).Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list email messages: %w", err)
	}
	return mappers.EmailMessagesToEntities(ms), total, nil
}
