package models

import (
	"time"

	"github.com/recovvo-inc/recovvo/internal/shared/constants"
)

// TenantModel lives in the common schema; every other model lives in the
// tenant's own schema and is addressed with an explicit schema-qualified
// table name.
type TenantModel struct {
	ID                     uint   `gorm:"primarykey"`
	Name                   string `gorm:"not null;size:255"`
	SchemaName             string `gorm:"uniqueIndex;not null;size:63"`
	Slug                   string `gorm:"uniqueIndex;not null;size:255"`
	OrganizationAdminEmail string `gorm:"not null;size:255"`
	IsActive               bool   `gorm:"not null;default:true"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (TenantModel) TableName() string {
	return constants.CommonSchema + ".tenants"
}

// OrgSettingModel is a single-row table inside each tenant schema.
type OrgSettingModel struct {
	ID                    uint `gorm:"primarykey"`
	EmailAccessStartDate  *time.Time
	EmailAccessEndDate    *time.Time
	OnboardingCompletedAt *time.Time
	UpdatedAt             time.Time
}

func (OrgSettingModel) TableName() string {
	return "organization_settings"
}
