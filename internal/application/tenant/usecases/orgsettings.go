package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/recovvo-inc/recovvo/internal/application/tenant/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type GetOrgSettingsUseCase struct {
	settingRepo tenant.OrgSettingRepository
	logger      logger.Interface
}

func NewGetOrgSettingsUseCase(settingRepo tenant.OrgSettingRepository, logger logger.Interface) *GetOrgSettingsUseCase {
	return &GetOrgSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *GetOrgSettingsUseCase) Execute(ctx context.Context, schema string) (*dto.OrgSettingDTO, error) {
	setting, err := uc.settingRepo.Get(ctx, schema)
	if err != nil {
		uc.logger.Errorw("failed to load org settings", "error", err, "schema", schema)
		return nil, fmt.Errorf("failed to load org settings: %w", err)
	}
	return dto.ToOrgSettingDTO(setting), nil
}

type UpdateOrgSettingsCommand struct {
	Schema               string
	EmailAccessStartDate *string
	EmailAccessEndDate   *string
	CompleteOnboarding   bool
}

type UpdateOrgSettingsUseCase struct {
	settingRepo tenant.OrgSettingRepository
	logger      logger.Interface
}

func NewUpdateOrgSettingsUseCase(settingRepo tenant.OrgSettingRepository, logger logger.Interface) *UpdateOrgSettingsUseCase {
	return &UpdateOrgSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *UpdateOrgSettingsUseCase) Execute(ctx context.Context, cmd UpdateOrgSettingsCommand) (*dto.OrgSettingDTO, error) {
	setting, err := uc.settingRepo.Get(ctx, cmd.Schema)
	if err != nil {
		uc.logger.Errorw("failed to load org settings", "error", err, "schema", cmd.Schema)
		return nil, fmt.Errorf("failed to load org settings: %w", err)
	}

	if cmd.EmailAccessStartDate != nil {
		start, err := parseOptionalDate(*cmd.EmailAccessStartDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid emailAccessStartDate, expected YYYY-MM-DD")
		}
		setting.EmailAccessStartDate = start
	}
	if cmd.EmailAccessEndDate != nil {
		end, err := parseOptionalDate(*cmd.EmailAccessEndDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid emailAccessEndDate, expected YYYY-MM-DD")
		}
		setting.EmailAccessEndDate = end
	}
	if setting.EmailAccessStartDate != nil && setting.EmailAccessEndDate != nil &&
		setting.EmailAccessEndDate.Before(*setting.EmailAccessStartDate) {
		return nil, errors.NewValidationError("emailAccessEndDate precedes emailAccessStartDate")
	}
	if cmd.CompleteOnboarding && setting.OnboardingCompletedAt == nil {
		now := biztime.NowUTC()
		setting.OnboardingCompletedAt = &now
	}

	if err := uc.settingRepo.Update(ctx, cmd.Schema, setting); err != nil {
		uc.logger.Errorw("failed to update org settings", "error", err, "schema", cmd.Schema)
		return nil, fmt.Errorf("failed to update org settings: %w", err)
	}

	uc.logger.Infow("org settings updated", "schema", cmd.Schema)
	return dto.ToOrgSettingDTO(setting), nil
}

// parseOptionalDate treats empty string as clearing the bound.
func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
