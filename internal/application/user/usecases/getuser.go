package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, schema string, id uint) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, schema, id)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return dto.ToUserDTO(u), nil
}

type ListUsersQuery struct {
	Schema     string
	Pagination utils.Pagination
}

type ListUsersResult struct {
	Users []*dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	users, total, err := uc.userRepo.List(ctx, query.Schema, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err, "schema", query.Schema)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersResult{Users: dto.ToUserDTOs(users), Total: total}, nil
}
