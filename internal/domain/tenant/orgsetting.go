package tenant

import "time"

// OrgSetting holds per-organization configuration stored in the tenant schema.
// The email access window bounds how far back email content may be viewed,
// regardless of any individual grant.
type OrgSetting struct {
	ID                    uint
	EmailAccessStartDate  *time.Time
	EmailAccessEndDate    *time.Time
	OnboardingCompletedAt *time.Time
	UpdatedAt             time.Time
}
