package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// SessionRepository persists auth sessions inside a tenant schema.
type SessionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSessionRepository(db *gorm.DB, logger logger.Interface) user.SessionRepository {
	return &SessionRepository{db: db, logger: logger}
}

func (r *SessionRepository) table(schema string) string {
	return schema + ".sessions"
}

func (r *SessionRepository) Create(ctx context.Context, schema string, s *user.Session) error {
	model := mappers.SessionToModel(s)
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create session", "schema", schema, "user_id", s.UserID, "error", err)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, schema string, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return mappers.SessionToEntity(&model), nil
}

func (r *SessionRepository) GetByRefreshTokenHash(ctx context.Context, schema string, hash string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Where("refresh_token_hash = ?", hash).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by refresh token: %w", err)
	}
	return mappers.SessionToEntity(&model), nil
}

func (r *SessionRepository) Update(ctx context.Context, schema string, s *user.Session) error {
	model := mappers.SessionToModel(s)
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", s.ID).
		Select("refresh_token_hash", "expires_at", "last_activity_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update session", "schema", schema, "session_id", s.ID, "error", result.Error)
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, schema string, sessionID string) error {
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", sessionID).Delete(&models.SessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, schema string) error {
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("expires_at < ?", biztime.NowUTC()).
		Delete(&models.SessionModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
