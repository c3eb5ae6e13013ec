package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	apperrors "github.com/recovvo-inc/recovvo/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateOrgSettings_SetsAccessWindow(t *testing.T) {
	var saved *tenant.OrgSetting
	repo := &mockOrgSettingRepo{
		getFunc: func(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
			return &tenant.OrgSetting{ID: 1}, nil
		},
		updateFunc: func(ctx context.Context, schema string, setting *tenant.OrgSetting) error {
			saved = setting
			return nil
		},
	}

	uc := NewUpdateOrgSettingsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateOrgSettingsCommand{
		Schema:               "acme_corp_com",
		EmailAccessStartDate: strPtr("2023-01-01"),
		EmailAccessEndDate:   strPtr("2023-12-31"),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), *saved.EmailAccessStartDate)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), *saved.EmailAccessEndDate)
	assert.NotNil(t, result.EmailAccessStartDate)
}

func TestUpdateOrgSettings_InvertedWindowRejected(t *testing.T) {
	repo := &mockOrgSettingRepo{
		getFunc: func(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
			return &tenant.OrgSetting{ID: 1}, nil
		},
	}

	uc := NewUpdateOrgSettingsUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateOrgSettingsCommand{
		Schema:               "acme_corp_com",
		EmailAccessStartDate: strPtr("2023-12-31"),
		EmailAccessEndDate:   strPtr("2023-01-01"),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateOrgSettings_EmptyStringClearsBound(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	var saved *tenant.OrgSetting
	repo := &mockOrgSettingRepo{
		getFunc: func(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
			return &tenant.OrgSetting{ID: 1, EmailAccessStartDate: &start}, nil
		},
		updateFunc: func(ctx context.Context, schema string, setting *tenant.OrgSetting) error {
			saved = setting
			return nil
		},
	}

	uc := NewUpdateOrgSettingsUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateOrgSettingsCommand{
		Schema:               "acme_corp_com",
		EmailAccessStartDate: strPtr(""),
	})

	require.NoError(t, err)
	assert.Nil(t, saved.EmailAccessStartDate)
}

func TestUpdateOrgSettings_CompleteOnboardingIsIdempotent(t *testing.T) {
	completed := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	var saved *tenant.OrgSetting
	repo := &mockOrgSettingRepo{
		getFunc: func(ctx context.Context, schema string) (*tenant.OrgSetting, error) {
			return &tenant.OrgSetting{ID: 1, OnboardingCompletedAt: &completed}, nil
		},
		updateFunc: func(ctx context.Context, schema string, setting *tenant.OrgSetting) error {
			saved = setting
			return nil
		},
	}

	uc := NewUpdateOrgSettingsUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateOrgSettingsCommand{
		Schema:             "acme_corp_com",
		CompleteOnboarding: true,
	})

	require.NoError(t, err)
	assert.Equal(t, completed, *saved.OnboardingCompletedAt)
}
