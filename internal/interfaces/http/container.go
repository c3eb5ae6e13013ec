package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contactUsecases "github.com/recovvo-inc/recovvo/internal/application/contact/usecases"
	reportUsecases "github.com/recovvo-inc/recovvo/internal/application/report/usecases"
	tenantUsecases "github.com/recovvo-inc/recovvo/internal/application/tenant/usecases"
	userUsecases "github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/domain/report"
	"github.com/recovvo-inc/recovvo/internal/domain/tenant"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/auth"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/cache"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/config"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/email"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/migration"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/repository"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/handlers"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// repositories groups every persistence port the use cases consume.
type repositories struct {
	tenants        tenant.Repository
	orgSettings    tenant.OrgSettingRepository
	users          user.Repository
	sessions       user.SessionRepository
	supervisors    user.SupervisorMappingRepository
	aliases        user.AliasMappingRepository
	collaborators  user.CollaboratorMappingRepository
	contacts       contact.Repository
	clientDomains  contact.ClientDomainRepository
	domainMappings contact.DomainMappingRepository
	emailMessages  contact.EmailMessageRepository
	eventLogs      report.EventLogRepository
	usageReports   report.UsageReportRepository
	searchReports  report.SearchReportRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		tenants:        repository.NewTenantRepository(db, log),
		orgSettings:    repository.NewOrgSettingRepository(db, log),
		users:          repository.NewUserRepository(db, log),
		sessions:       repository.NewSessionRepository(db, log),
		supervisors:    repository.NewSupervisorMappingRepository(db, log),
		aliases:        repository.NewAliasMappingRepository(db, log),
		collaborators:  repository.NewCollaboratorMappingRepository(db, log),
		contacts:       repository.NewContactRepository(db, log),
		clientDomains:  repository.NewClientDomainRepository(db, log),
		domainMappings: repository.NewDomainMappingRepository(db, log),
		emailMessages:  repository.NewEmailMessageRepository(db, log),
		eventLogs:      repository.NewEventLogRepository(db, log),
		usageReports:   repository.NewUsageReportRepository(db, log),
		searchReports:  repository.NewSearchReportRepository(db, log),
	}
}

// handlerSet groups every HTTP handler the router registers.
type handlerSet struct {
	auth    *handlers.AuthHandler
	tenant  *handlers.TenantHandler
	user    *handlers.UserHandler
	mapping *handlers.MappingHandler
	contact *handlers.ContactHandler
	report  *handlers.ReportHandler
	health  *handlers.HealthHandler
}

// buildHandlers wires repositories through the use case layer into handlers.
func buildHandlers(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	repos *repositories,
	log logger.Interface,
) *handlerSet {
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	oauthManager := auth.NewOAuthServiceManager(&cfg.OAuth)
	stateStore := cache.NewRedisOAuthStateStore(redisClient)
	pkce := auth.NewPKCEGenerator()
	mailer := email.NewSMTPMailer(&cfg.Email, cfg.Server.BaseURL)
	provisioner := migration.NewTenantProvisioner(db, &cfg.Database, log)

	resolver := visibility.NewResolver(repos.supervisors, repos.aliases, repos.collaborators, repos.domainMappings, log)
	classifier := visibility.NewClassifier(repos.supervisors, repos.aliases, repos.domainMappings, log)

	authHandler := handlers.NewAuthHandler(
		userUsecases.NewLoginWithPasswordUseCase(repos.users, repos.sessions, hasher, jwtService, cfg.Auth.JWT, log),
		userUsecases.NewRefreshTokenUseCase(repos.users, repos.sessions, jwtService, log),
		userUsecases.NewLogoutUseCase(repos.sessions, log),
		userUsecases.NewInitiateOAuthLoginUseCase(oauthManager, stateStore, pkce, log),
		userUsecases.NewHandleOAuthCallbackUseCase(repos.users, repos.sessions, oauthManager, stateStore, jwtService, cfg.Auth.JWT, log),
		log,
	)

	tenantHandler := handlers.NewTenantHandler(
		tenantUsecases.NewCreateTenantUseCase(repos.tenants, provisioner, mailer, log),
		tenantUsecases.NewGetTenantUseCase(repos.tenants, log),
		tenantUsecases.NewListTenantsUseCase(repos.tenants, log),
		tenantUsecases.NewUpdateTenantUseCase(repos.tenants, log),
		tenantUsecases.NewGetOrgSettingsUseCase(repos.orgSettings, log),
		tenantUsecases.NewUpdateOrgSettingsUseCase(repos.orgSettings, log),
		log,
	)

	userHandler := handlers.NewUserHandler(
		userUsecases.NewCreateUserUseCase(repos.users, hasher, log),
		userUsecases.NewGetUserUseCase(repos.users, log),
		userUsecases.NewListUsersUseCase(repos.users, log),
		userUsecases.NewUpdateUserUseCase(repos.users, log),
		log,
	)

	mappingHandler := handlers.NewMappingHandler(
		userUsecases.NewCreateSupervisorMappingUseCase(repos.users, repos.supervisors, log),
		userUsecases.NewDeleteSupervisorMappingUseCase(repos.supervisors, log),
		userUsecases.NewCreateAliasMappingUseCase(repos.users, repos.aliases, log),
		userUsecases.NewUpdateAliasWindowUseCase(repos.aliases, log),
		userUsecases.NewCreateCollaboratorMappingUseCase(repos.users, repos.collaborators, log),
		contactUsecases.NewCreateDomainMappingUseCase(repos.domainMappings, repos.clientDomains, repos.users, log),
		contactUsecases.NewDeleteDomainMappingUseCase(repos.domainMappings, log),
		log,
	)

	contactHandler := handlers.NewContactHandler(
		contactUsecases.NewListContactsUseCase(resolver, repos.contacts, log),
		contactUsecases.NewGetContactActivityUseCase(classifier, repos.contacts, repos.emailMessages, repos.orgSettings, log),
		contactUsecases.NewExportContactsUseCase(resolver, repos.contacts, log),
		contactUsecases.NewExportAttachmentsUseCase(classifier, repos.contacts, repos.emailMessages, repos.orgSettings, log),
		contactUsecases.NewListClientDomainsUseCase(resolver, repos.clientDomains, log),
		contactUsecases.NewGetClientDomainUseCase(resolver, repos.clientDomains, log),
		log,
	)

	reportHandler := handlers.NewReportHandler(
		reportUsecases.NewGetUsageReportUseCase(repos.usageReports, log),
		reportUsecases.NewGetSearchReportUseCase(repos.searchReports, log),
		log,
	)

	return &handlerSet{
		auth:    authHandler,
		tenant:  tenantHandler,
		user:    userHandler,
		mapping: mappingHandler,
		contact: contactHandler,
		report:  reportHandler,
		health:  handlers.NewHealthHandler(db, redisClient),
	}
}
