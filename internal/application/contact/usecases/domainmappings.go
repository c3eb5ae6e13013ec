package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type CreateDomainMappingCommand struct {
	Schema         string
	ClientDomainID uint
	ProviderUserID uint
}

// CreateDomainMappingUseCase grants a provider user direct access to a
// client domain. Grants feed the visibility resolver read-only.
type CreateDomainMappingUseCase struct {
	mappingRepo contact.DomainMappingRepository
	domainRepo  contact.ClientDomainRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewCreateDomainMappingUseCase(
	mappingRepo contact.DomainMappingRepository,
	domainRepo contact.ClientDomainRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateDomainMappingUseCase {
	return &CreateDomainMappingUseCase{
		mappingRepo: mappingRepo,
		domainRepo:  domainRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateDomainMappingUseCase) Execute(ctx context.Context, cmd CreateDomainMappingCommand) (*contact.DomainMapping, error) {
	if _, err := uc.domainRepo.GetByID(ctx, cmd.Schema, cmd.ClientDomainID); err != nil {
		if stderrors.Is(err, contact.ErrClientDomainNotFound) {
			return nil, errors.NewNotFoundError("client domain not found")
		}
		return nil, fmt.Errorf("failed to load client domain: %w", err)
	}
	if _, err := uc.userRepo.GetByID(ctx, cmd.Schema, cmd.ProviderUserID); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("provider user not found")
		}
		return nil, fmt.Errorf("failed to load provider user: %w", err)
	}

	m := &contact.DomainMapping{
		ClientDomainID: cmd.ClientDomainID,
		ProviderUserID: cmd.ProviderUserID,
	}
	if err := uc.mappingRepo.Create(ctx, cmd.Schema, m); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("domain mapping already exists")
		}
		uc.logger.Errorw("failed to persist domain mapping", "error", err)
		return nil, fmt.Errorf("failed to persist domain mapping: %w", err)
	}

	uc.logger.Infow("domain mapping created",
		"client_domain_id", cmd.ClientDomainID,
		"provider_user_id", cmd.ProviderUserID,
		"schema", cmd.Schema,
	)
	return m, nil
}

type DeleteDomainMappingUseCase struct {
	mappingRepo contact.DomainMappingRepository
	logger      logger.Interface
}

func NewDeleteDomainMappingUseCase(mappingRepo contact.DomainMappingRepository, logger logger.Interface) *DeleteDomainMappingUseCase {
	return &DeleteDomainMappingUseCase{mappingRepo: mappingRepo, logger: logger}
}

func (uc *DeleteDomainMappingUseCase) Execute(ctx context.Context, schema string, id uint) error {
	if err := uc.mappingRepo.SoftDelete(ctx, schema, id); err != nil {
		if stderrors.Is(err, contact.ErrDomainMappingNotFound) {
			return errors.NewNotFoundError("domain mapping not found")
		}
		uc.logger.Errorw("failed to delete domain mapping", "error", err, "mapping_id", id)
		return fmt.Errorf("failed to delete domain mapping: %w", err)
	}
	return nil
}
