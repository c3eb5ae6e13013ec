package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// UserRepository persists provider users inside a tenant schema.
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) table(schema string) string {
	return schema + ".provider_users"
}

func (r *UserRepository) Create(ctx context.Context, schema string, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "schema", schema, "email", u.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = model.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, schema string, id uint) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return mappers.UserToEntity(&model), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, schema string, email string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return mappers.UserToEntity(&model), nil
}

func (r *UserRepository) List(ctx context.Context, schema string, offset, limit int) ([]*user.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(r.table(schema)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var ms []*models.UserModel
	err := r.db.WithContext(ctx).Table(r.table(schema)).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return mappers.UsersToEntities(ms), total, nil
}

func (r *UserRepository) Update(ctx context.Context, schema string, u *user.User) error {
	model := mappers.UserToModel(u)
	result := r.db.WithContext(ctx).Table(r.table(schema)).Where("id = ?", u.ID).
		Select("first_name", "last_name", "role", "password_hash", "is_active", "last_login_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "schema", schema, "id", u.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
