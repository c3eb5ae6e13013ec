package usecases

import "context"

// OnboardingMailer sends the initial admin invitation for a new tenant.
type OnboardingMailer interface {
	SendTenantOnboarding(ctx context.Context, adminEmail, tenantName, schemaID string) error
}
