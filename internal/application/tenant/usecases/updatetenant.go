package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/tenant/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type UpdateTenantCommand struct {
	ID         uint
	Name       *string
	Deactivate bool
}

type UpdateTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewUpdateTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *UpdateTenantUseCase) Execute(ctx context.Context, cmd UpdateTenantCommand) (*dto.TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if stderrors.Is(err, tenant.ErrTenantNotFound) {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		uc.logger.Errorw("failed to load tenant", "error", err, "tenant_id", cmd.ID)
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	if cmd.Name != nil {
		if err := t.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Deactivate {
		t.Deactivate()
	}

	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update tenant", "error", err, "tenant_id", cmd.ID)
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	uc.logger.Infow("tenant updated", "tenant_id", t.ID, "active", t.IsActive)
	return dto.ToTenantDTO(t), nil
}
