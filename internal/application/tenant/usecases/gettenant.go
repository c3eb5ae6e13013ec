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

type GetTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewGetTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, id uint) (*dto.TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, tenant.ErrTenantNotFound) {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		uc.logger.Errorw("failed to load tenant", "error", err, "tenant_id", id)
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return dto.ToTenantDTO(t), nil
}

// ExecuteBySchemaID resolves a tenant from the encoded schema identifier
// carried in tenant-scoped request paths.
func (uc *GetTenantUseCase) ExecuteBySchemaID(ctx context.Context, schemaID string) (*dto.TenantDTO, error) {
	schema, err := tenant.DecodeSchema(schemaID)
	if err != nil {
		return nil, errors.NewValidationError("invalid tenant identifier")
	}
	t, err := uc.tenantRepo.GetBySchemaName(ctx, schema)
	if err != nil {
		if stderrors.Is(err, tenant.ErrTenantNotFound) {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		uc.logger.Errorw("failed to load tenant", "error", err, "schema", schema)
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return dto.ToTenantDTO(t), nil
}
