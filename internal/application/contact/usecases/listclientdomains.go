package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/contact/dto"
	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type ListClientDomainsQuery struct {
	Schema     string
	Caller     visibility.Caller
	Params     visibility.SearchUserParams
	Pagination utils.Pagination
}

type ListClientDomainsResult struct {
	Domains []*dto.ClientDomainDTO
	Total   int64
}

type ListClientDomainsUseCase struct {
	resolver   *visibility.Resolver
	domainRepo contact.ClientDomainRepository
	logger     logger.Interface
}

func NewListClientDomainsUseCase(
	resolver *visibility.Resolver,
	domainRepo contact.ClientDomainRepository,
	logger logger.Interface,
) *ListClientDomainsUseCase {
	return &ListClientDomainsUseCase{
		resolver:   resolver,
		domainRepo: domainRepo,
		logger:     logger,
	}
}

// Execute lists the client domains inside the caller's visibility. Domains
// outside the resolved set and suppressed domains are filtered out.
func (uc *ListClientDomainsUseCase) Execute(ctx context.Context, query ListClientDomainsQuery) (*ListClientDomainsResult, error) {
	resolved, err := uc.resolver.Resolve(ctx, query.Schema, query.Caller, query.Params)
	if err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	domains, _, err := uc.domainRepo.List(ctx, query.Schema, 0, p.Offset()+p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list client domains", "error", err, "schema", query.Schema)
		return nil, fmt.Errorf("failed to list client domains: %w", err)
	}

	visible := make([]*contact.ClientDomain, 0, len(domains))
	for _, d := range domains {
		if d.IsSuppressed || !resolved.VisibleDomain(d.ID) {
			continue
		}
		visible = append(visible, d)
	}

	start := p.Offset()
	if start > len(visible) {
		start = len(visible)
	}
	end := start + p.PageSize
	if end > len(visible) {
		end = len(visible)
	}

	return &ListClientDomainsResult{
		Domains: dto.ToClientDomainDTOs(visible[start:end]),
		Total:   int64(len(visible)),
	}, nil
}

type GetClientDomainUseCase struct {
	resolver   *visibility.Resolver
	domainRepo contact.ClientDomainRepository
	logger     logger.Interface
}

func NewGetClientDomainUseCase(
	resolver *visibility.Resolver,
	domainRepo contact.ClientDomainRepository,
	logger logger.Interface,
) *GetClientDomainUseCase {
	return &GetClientDomainUseCase{resolver: resolver, domainRepo: domainRepo, logger: logger}
}

func (uc *GetClientDomainUseCase) Execute(ctx context.Context, schema string, caller visibility.Caller, domainID uint) (*dto.ClientDomainDTO, error) {
	resolved, err := uc.resolver.Resolve(ctx, schema, caller, visibility.SearchUserParams{})
	if err != nil {
		return nil, err
	}
	if err := uc.resolver.AuthorizeDomain(resolved, domainID); err != nil {
		return nil, err
	}

	d, err := uc.domainRepo.GetByID(ctx, schema, domainID)
	if err != nil {
		if stderrors.Is(err, contact.ErrClientDomainNotFound) {
			return nil, errors.NewNotFoundError("client domain not found")
		}
		uc.logger.Errorw("failed to load client domain", "error", err, "domain_id", domainID)
		return nil, fmt.Errorf("failed to load client domain: %w", err)
	}
	return dto.ToClientDomainDTO(d), nil
}
