package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type UpdateUserCommand struct {
	Schema    string
	ID        uint
	FirstName *string
	LastName  *string
	Role      *string
	IsActive  *bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.Schema, cmd.ID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.ID)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if cmd.Role != nil {
		role := user.Role(*cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", *cmd.Role))
		}
		u.Role = role
	}
	if cmd.FirstName != nil {
		u.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		u.LastName = *cmd.LastName
	}
	if cmd.IsActive != nil {
		u.IsActive = *cmd.IsActive
	}
	u.UpdatedAt = biztime.NowUTC()

	if err := uc.userRepo.Update(ctx, cmd.Schema, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.ID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", u.ID, "role", u.Role, "active", u.IsActive)
	return dto.ToUserDTO(u), nil
}
