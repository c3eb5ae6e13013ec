// Package mappers converts between domain entities and persistence models.
// Models never leak out of the repository layer.
package mappers

import (
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
)

func TenantToModel(t *tenant.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:                     t.ID,
		Name:                   t.Name,
		SchemaName:             t.SchemaName,
		Slug:                   t.Slug,
		OrganizationAdminEmail: t.OrganizationAdminEmail,
		IsActive:               t.IsActive,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

func TenantToEntity(m *models.TenantModel) *tenant.Tenant {
	if m == nil {
		return nil
	}
	return &tenant.Tenant{
		ID:                     m.ID,
		Name:                   m.Name,
		SchemaName:             m.SchemaName,
		Slug:                   m.Slug,
		OrganizationAdminEmail: m.OrganizationAdminEmail,
		IsActive:               m.IsActive,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func TenantsToEntities(ms []*models.TenantModel) []*tenant.Tenant {
	out := make([]*tenant.Tenant, 0, len(ms))
	for _, m := range ms {
		out = append(out, TenantToEntity(m))
	}
	return out
}

func OrgSettingToModel(s *tenant.OrgSetting) *models.OrgSettingModel {
	return &models.OrgSettingModel{
		ID:                    s.ID,
		EmailAccessStartDate:  s.EmailAccessStartDate,
		EmailAccessEndDate:    s.EmailAccessEndDate,
		OnboardingCompletedAt: s.OnboardingCompletedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func OrgSettingToEntity(m *models.OrgSettingModel) *tenant.OrgSetting {
	if m == nil {
		return nil
	}
	return &tenant.OrgSetting{
		ID:                    m.ID,
		EmailAccessStartDate:  m.EmailAccessStartDate,
		EmailAccessEndDate:    m.EmailAccessEndDate,
		OnboardingCompletedAt: m.OnboardingCompletedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
