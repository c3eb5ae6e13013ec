package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type HandleOAuthCallbackCommand struct {
	State     string
	Code      string
	IPAddress string
	UserAgent string
}

type HandleOAuthCallbackResult struct {
	Auth   *dto.AuthResultDTO
	Schema string
}

type HandleOAuthCallbackUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	manager     OAuthServiceManager
	stateStore  OAuthStateStore
	jwtService  JWTService
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	manager OAuthServiceManager,
	stateStore OAuthStateStore,
	jwtService JWTService,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		manager:     manager,
		stateStore:  stateStore,
		jwtService:  jwtService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

// Execute completes the authorization-code flow. The state token must match
// a pending flow; the exchanged identity must belong to an existing, active
// user in the flow's tenant. Unknown emails are rejected rather than
// auto-provisioned.
func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	flow, err := uc.stateStore.Consume(ctx, cmd.State)
	if err != nil {
		return nil, errors.NewUnauthorizedError("login flow expired, try again")
	}

	svc, err := uc.manager.Get(flow.Provider)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported provider: %s", flow.Provider))
	}

	profile, err := svc.ExchangeProfile(ctx, cmd.Code, flow.CodeVerifier)
	if err != nil {
		uc.logger.Warnw("oauth code exchange failed", "error", err, "provider", flow.Provider)
		return nil, errors.NewUnauthorizedError("provider login failed")
	}

	u, err := uc.userRepo.GetByEmail(ctx, flow.Schema, profile.Email)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewForbiddenError("no account for this email in the organization")
		}
		uc.logger.Errorw("failed to load user", "error", err, "schema", flow.Schema)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !u.IsActive {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	auth, err := issueSession(ctx, uc.sessionRepo, uc.jwtService, uc.jwtConfig, flow.Schema, u, cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		uc.logger.Errorw("failed to establish session", "error", err, "user_id", u.ID)
		return nil, err
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, flow.Schema, u); err != nil {
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", u.ID)
	}

	uc.logger.Infow("oauth login completed", "user_id", u.ID, "provider", flow.Provider, "schema", flow.Schema)
	return &HandleOAuthCallbackResult{Auth: auth, Schema: flow.Schema}, nil
}
