package usecases

import (
	"context"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/tenant/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type CreateTenantCommand struct {
	Name       string
	AdminEmail string
}

type CreateTenantUseCase struct {
	tenantRepo  tenant.Repository
	provisioner tenant.SchemaProvisioner
	mailer      OnboardingMailer
	logger      logger.Interface
}

func NewCreateTenantUseCase(
	tenantRepo tenant.Repository,
	provisioner tenant.SchemaProvisioner,
	mailer OnboardingMailer,
	logger logger.Interface,
) *CreateTenantUseCase {
	return &CreateTenantUseCase{
		tenantRepo:  tenantRepo,
		provisioner: provisioner,
		mailer:      mailer,
		logger:      logger,
	}
}

// Execute registers the tenant, provisions its dedicated schema, and sends
// the admin onboarding email. The email is best-effort; a delivery failure
// does not roll back the tenant.
func (uc *CreateTenantUseCase) Execute(ctx context.Context, cmd CreateTenantCommand) (*dto.TenantDTO, error) {
	t, err := tenant.NewTenant(cmd.Name, cmd.AdminEmail)
	if err != nil {
		uc.logger.Errorw("invalid tenant input", "error", err, "name", cmd.Name)
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.tenantRepo.ExistsBySchemaName(ctx, t.SchemaName)
	if err != nil {
		uc.logger.Errorw("failed to check schema existence", "error", err, "schema", t.SchemaName)
		return nil, fmt.Errorf("failed to check schema existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("organization %s is already registered", t.Slug))
	}

	if err := uc.tenantRepo.Create(ctx, t); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("organization %s is already registered", t.Slug))
		}
		uc.logger.Errorw("failed to persist tenant", "error", err, "schema", t.SchemaName)
		return nil, fmt.Errorf("failed to persist tenant: %w", err)
	}

	if err := uc.provisioner.Provision(ctx, t.SchemaName); err != nil {
		uc.logger.Errorw("failed to provision tenant schema", "error", err, "schema", t.SchemaName)
		return nil, fmt.Errorf("failed to provision tenant schema: %w", err)
	}

	if err := uc.mailer.SendTenantOnboarding(ctx, t.OrganizationAdminEmail, t.Name, t.EncodedSchema()); err != nil {
		uc.logger.Warnw("failed to send onboarding email", "error", err, "tenant_id", t.ID)
	}

	uc.logger.Infow("tenant created", "tenant_id", t.ID, "slug", t.Slug, "schema", t.SchemaName)
	return dto.ToTenantDTO(t), nil
}
