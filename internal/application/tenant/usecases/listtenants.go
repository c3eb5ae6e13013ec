package usecases

import (
	"context"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/tenant/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type ListTenantsQuery struct {
	Pagination utils.Pagination
}

type ListTenantsResult struct {
	Tenants []*dto.TenantDTO
	Total   int64
}

type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, query ListTenantsQuery) (*ListTenantsResult, error) {
	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	tenants, total, err := uc.tenantRepo.List(ctx, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return &ListTenantsResult{Tenants: dto.ToTenantDTOs(tenants), Total: total}, nil
}
