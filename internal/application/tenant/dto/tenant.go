package dto

import (
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
)

// TenantDTO is the API representation of a tenant. SchemaID is the encoded
// identifier clients embed in tenant-scoped paths.
type TenantDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	SchemaID   string    `json:"schemaId"`
	AdminEmail string    `json:"adminEmail"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToTenantDTO(t *tenant.Tenant) *TenantDTO {
	return &TenantDTO{
		ID:         t.ID,
		Name:       t.Name,
		Slug:       t.Slug,
		SchemaID:   t.EncodedSchema(),
		AdminEmail: t.OrganizationAdminEmail,
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func ToTenantDTOs(tenants []*tenant.Tenant) []*TenantDTO {
	out := make([]*TenantDTO, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, ToTenantDTO(t))
	}
	return out
}

// OrgSettingDTO exposes the organization-wide email access window.
type OrgSettingDTO struct {
	EmailAccessStartDate  *time.Time `json:"emailAccessStartDate"`
	EmailAccessEndDate    *time.Time `json:"emailAccessEndDate"`
	OnboardingCompletedAt *time.Time `json:"onboardingCompletedAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func ToOrgSettingDTO(s *tenant.OrgSetting) *OrgSettingDTO {
	return &OrgSettingDTO{
		EmailAccessStartDate:  s.EmailAccessStartDate,
		EmailAccessEndDate:    s.EmailAccessEndDate,
		OnboardingCompletedAt: s.OnboardingCompletedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
