package usecases

import (
	"context"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type CreateUserCommand struct {
	Schema    string
	Email     string
	FirstName string
	LastName  string
	Role      string
	Provider  string
	Password  string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	provider := user.AuthProvider(cmd.Provider)
	if provider == "" {
		provider = user.ProviderLocal
	}

	u, err := user.NewUser(cmd.Email, cmd.FirstName, cmd.LastName, user.Role(cmd.Role), provider)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if provider == user.ProviderLocal {
		if cmd.Password == "" {
			return nil, errors.NewValidationError("password is required for local accounts")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := uc.userRepo.Create(ctx, cmd.Schema, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to persist user", "error", err, "schema", cmd.Schema)
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", u.ID, "role", u.Role, "schema", cmd.Schema)
	return dto.ToUserDTO(u), nil
}
