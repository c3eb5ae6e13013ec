package usecases

import (
	"context"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/contact/dto"
	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type ListContactsQuery struct {
	Schema          string
	Caller          visibility.Caller
	Params          visibility.SearchUserParams
	Search          string
	ClientDomainIDs visibility.Selector
	Pagination      utils.Pagination
}

type ListContactsResult struct {
	Contacts []*dto.ContactDTO
	Total    int64
}

type ListContactsUseCase struct {
	resolver    *visibility.Resolver
	contactRepo contact.Repository
	logger      logger.Interface
}

func NewListContactsUseCase(
	resolver *visibility.Resolver,
	contactRepo contact.Repository,
	logger logger.Interface,
) *ListContactsUseCase {
	return &ListContactsUseCase{
		resolver:    resolver,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Execute lists contacts restricted to the caller's resolved visibility.
// The clientDomainIds selector narrows within the resolved set; IDs outside
// it are silently dropped, and an empty intersection yields an empty page
// rather than an error.
func (uc *ListContactsUseCase) Execute(ctx context.Context, query ListContactsQuery) (*ListContactsResult, error) {
	resolved, err := uc.resolver.Resolve(ctx, query.Schema, query.Caller, query.Params)
	if err != nil {
		return nil, err
	}

	domainIDs := query.ClientDomainIDs.Filter(resolved.ClientDomainIDs.ToSlice())
	if len(domainIDs) == 0 {
		return &ListContactsResult{Contacts: []*dto.ContactDTO{}, Total: 0}, nil
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	contacts, total, err := uc.contactRepo.List(ctx, query.Schema, contact.Filter{
		ClientDomainIDs: domainIDs,
		Search:          query.Search,
		Offset:          p.Offset(),
		Limit:           p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list contacts", "error", err, "schema", query.Schema)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &ListContactsResult{Contacts: dto.ToContactDTOs(contacts), Total: total}, nil
}
