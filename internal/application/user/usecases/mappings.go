package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// History actions recorded on alias mappings.
const (
	historyActionCreated       = "created"
	historyActionWindowUpdated = "window_updated"
)

type CreateSupervisorMappingCommand struct {
	Schema       string
	SupervisorID uint
	UserID       uint
}

type CreateSupervisorMappingUseCase struct {
	userRepo       user.Repository
	supervisorRepo user.SupervisorMappingRepository
	logger         logger.Interface
}

func NewCreateSupervisorMappingUseCase(
	userRepo user.Repository,
	supervisorRepo user.SupervisorMappingRepository,
	logger logger.Interface,
) *CreateSupervisorMappingUseCase {
	return &CreateSupervisorMappingUseCase{
		userRepo:       userRepo,
		supervisorRepo: supervisorRepo,
		logger:         logger,
	}
}

func (uc *CreateSupervisorMappingUseCase) Execute(ctx context.Context, cmd CreateSupervisorMappingCommand) error {
	if cmd.SupervisorID == cmd.UserID {
		return errors.NewValidationError("a user cannot supervise themselves")
	}

	supervisor, err := uc.userRepo.GetByID(ctx, cmd.Schema, cmd.SupervisorID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("supervisor not found")
		}
		return fmt.Errorf("failed to load supervisor: %w", err)
	}
	if !supervisor.IsSupervisor() && supervisor.Role != user.RoleAdmin {
		return errors.NewValidationError("user does not hold a supervisor role")
	}
	if _, err := uc.userRepo.GetByID(ctx, cmd.Schema, cmd.UserID); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("subordinate not found")
		}
		return fmt.Errorf("failed to load subordinate: %w", err)
	}

	m := &user.SupervisorMapping{SupervisorID: cmd.SupervisorID, UserID: cmd.UserID}
	if err := uc.supervisorRepo.Create(ctx, cmd.Schema, m); err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("mapping already exists")
		}
		uc.logger.Errorw("failed to persist supervisor mapping", "error", err)
		return fmt.Errorf("failed to persist supervisor mapping: %w", err)
	}

	uc.logger.Infow("supervisor mapping created",
		"supervisor_id", cmd.SupervisorID,
		"user_id", cmd.UserID,
		"schema", cmd.Schema,
	)
	return nil
}

type DeleteSupervisorMappingUseCase struct {
	supervisorRepo user.SupervisorMappingRepository
	logger         logger.Interface
}

func NewDeleteSupervisorMappingUseCase(supervisorRepo user.SupervisorMappingRepository, logger logger.Interface) *DeleteSupervisorMappingUseCase {
	return &DeleteSupervisorMappingUseCase{supervisorRepo: supervisorRepo, logger: logger}
}

func (uc *DeleteSupervisorMappingUseCase) Execute(ctx context.Context, schema string, id uint) error {
	if err := uc.supervisorRepo.SoftDelete(ctx, schema, id); err != nil {
		if stderrors.Is(err, user.ErrMappingNotFound) {
			return errors.NewNotFoundError("mapping not found")
		}
		uc.logger.Errorw("failed to delete supervisor mapping", "error", err, "mapping_id", id)
		return fmt.Errorf("failed to delete supervisor mapping: %w", err)
	}
	return nil
}

type CreateAliasMappingCommand struct {
	Schema                         string
	ActorID                        uint
	UserID                         uint
	AliasUserID                    uint
	AliasStartDate                 *time.Time
	AliasEndDate                   *time.Time
	HistoricalEmailAccessStartDate *time.Time
	HistoricalEmailAccessEndDate   *time.Time
}

type CreateAliasMappingUseCase struct {
	userRepo  user.Repository
	aliasRepo user.AliasMappingRepository
	logger    logger.Interface
}

func NewCreateAliasMappingUseCase(
	userRepo user.Repository,
	aliasRepo user.AliasMappingRepository,
	logger logger.Interface,
) *CreateAliasMappingUseCase {
	return &CreateAliasMappingUseCase{userRepo: userRepo, aliasRepo: aliasRepo, logger: logger}
}

func (uc *CreateAliasMappingUseCase) Execute(ctx context.Context, cmd CreateAliasMappingCommand) (*dto.AliasMappingDTO, error) {
	if cmd.UserID == cmd.AliasUserID {
		return nil, errors.NewValidationError("a user cannot be their own alias")
	}
	if err := validateWindow(cmd.AliasStartDate, cmd.AliasEndDate); err != nil {
		return nil, err
	}
	if err := validateWindow(cmd.HistoricalEmailAccessStartDate, cmd.HistoricalEmailAccessEndDate); err != nil {
		return nil, err
	}

	for _, id := range []uint{cmd.UserID, cmd.AliasUserID} {
		if _, err := uc.userRepo.GetByID(ctx, cmd.Schema, id); err != nil {
			if stderrors.Is(err, user.ErrUserNotFound) {
				return nil, errors.NewNotFoundError("user not found")
			}
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
	}

	m := &user.AliasMapping{
		UserID:                         cmd.UserID,
		AliasUserID:                    cmd.AliasUserID,
		AliasStartDate:                 cmd.AliasStartDate,
		AliasEndDate:                   cmd.AliasEndDate,
		HistoricalEmailAccessStartDate: cmd.HistoricalEmailAccessStartDate,
		HistoricalEmailAccessEndDate:   cmd.HistoricalEmailAccessEndDate,
	}
	m.AppendHistory(historyActionCreated, cmd.ActorID)

	if err := uc.aliasRepo.Create(ctx, cmd.Schema, m); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("alias mapping already exists")
		}
		uc.logger.Errorw("failed to persist alias mapping", "error", err)
		return nil, fmt.Errorf("failed to persist alias mapping: %w", err)
	}

	uc.logger.Infow("alias mapping created",
		"user_id", cmd.UserID,
		"alias_user_id", cmd.AliasUserID,
		"schema", cmd.Schema,
	)
	return dto.ToAliasMappingDTO(m), nil
}

type UpdateAliasWindowCommand struct {
	Schema                         string
	ActorID                        uint
	MappingID                      uint
	AliasStartDate                 *time.Time
	AliasEndDate                   *time.Time
	HistoricalEmailAccessStartDate *time.Time
	HistoricalEmailAccessEndDate   *time.Time
}

type UpdateAliasWindowUseCase struct {
	aliasRepo user.AliasMappingRepository
	logger    logger.Interface
}

func NewUpdateAliasWindowUseCase(aliasRepo user.AliasMappingRepository, logger logger.Interface) *UpdateAliasWindowUseCase {
	return &UpdateAliasWindowUseCase{aliasRepo: aliasRepo, logger: logger}
}

// Execute replaces both windows on an alias mapping and appends an audit
// entry. Prior history entries are preserved untouched.
func (uc *UpdateAliasWindowUseCase) Execute(ctx context.Context, cmd UpdateAliasWindowCommand) (*dto.AliasMappingDTO, error) {
	if err := validateWindow(cmd.AliasStartDate, cmd.AliasEndDate); err != nil {
		return nil, err
	}
	if err := validateWindow(cmd.HistoricalEmailAccessStartDate, cmd.HistoricalEmailAccessEndDate); err != nil {
		return nil, err
	}

	m, err := uc.aliasRepo.GetByID(ctx, cmd.Schema, cmd.MappingID)
	if err != nil {
		if stderrors.Is(err, user.ErrMappingNotFound) {
			return nil, errors.NewNotFoundError("mapping not found")
		}
		uc.logger.Errorw("failed to load alias mapping", "error", err, "mapping_id", cmd.MappingID)
		return nil, fmt.Errorf("failed to load alias mapping: %w", err)
	}

	m.AliasStartDate = cmd.AliasStartDate
	m.AliasEndDate = cmd.AliasEndDate
	m.HistoricalEmailAccessStartDate = cmd.HistoricalEmailAccessStartDate
	m.HistoricalEmailAccessEndDate = cmd.HistoricalEmailAccessEndDate
	m.AppendHistory(historyActionWindowUpdated, cmd.ActorID)

	if err := uc.aliasRepo.Update(ctx, cmd.Schema, m); err != nil {
		uc.logger.Errorw("failed to update alias mapping", "error", err, "mapping_id", cmd.MappingID)
		return nil, fmt.Errorf("failed to update alias mapping: %w", err)
	}

	return dto.ToAliasMappingDTO(m), nil
}

type CreateCollaboratorMappingCommand struct {
	Schema         string
	UserID         uint
	CollaboratorID uint
	StartDate      *time.Time
	EndDate        *time.Time
}

type CreateCollaboratorMappingUseCase struct {
	userRepo   user.Repository
	collabRepo user.CollaboratorMappingRepository
	logger     logger.Interface
}

func NewCreateCollaboratorMappingUseCase(
	userRepo user.Repository,
	collabRepo user.CollaboratorMappingRepository,
	logger logger.Interface,
) *CreateCollaboratorMappingUseCase {
	return &CreateCollaboratorMappingUseCase{userRepo: userRepo, collabRepo: collabRepo, logger: logger}
}

func (uc *CreateCollaboratorMappingUseCase) Execute(ctx context.Context, cmd CreateCollaboratorMappingCommand) error {
	if cmd.UserID == cmd.CollaboratorID {
		return errors.NewValidationError("a user cannot collaborate with themselves")
	}
	if err := validateWindow(cmd.StartDate, cmd.EndDate); err != nil {
		return err
	}

	for _, id := range []uint{cmd.UserID, cmd.CollaboratorID} {
		if _, err := uc.userRepo.GetByID(ctx, cmd.Schema, id); err != nil {
			if stderrors.Is(err, user.ErrUserNotFound) {
				return errors.NewNotFoundError("user not found")
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
	}

	m := &user.CollaboratorMapping{
		UserID:         cmd.UserID,
		CollaboratorID: cmd.CollaboratorID,
		StartDate:      cmd.StartDate,
		EndDate:        cmd.EndDate,
		IsActive:       true,
	}
	if err := uc.collabRepo.Create(ctx, cmd.Schema, m); err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("collaborator mapping already exists")
		}
		uc.logger.Errorw("failed to persist collaborator mapping", "error", err)
		return fmt.Errorf("failed to persist collaborator mapping: %w", err)
	}

	uc.logger.Infow("collaborator mapping created",
		"user_id", cmd.UserID,
		"collaborator_id", cmd.CollaboratorID,
		"schema", cmd.Schema,
	)
	return nil
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.NewValidationError("end date precedes start date")
	}
	return nil
}
