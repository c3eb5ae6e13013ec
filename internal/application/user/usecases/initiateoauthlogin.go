package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// oauthStateTTL bounds how long a login flow may sit between the redirect
// and the provider callback.
const oauthStateTTL = 10 * time.Minute

// PKCEGenerator creates a verifier/challenge pair for one flow.
type PKCEGenerator interface {
	Generate() (verifier, challenge string, err error)
}

type InitiateOAuthLoginCommand struct {
	Schema   string
	Provider string
}

type InitiateOAuthLoginResult struct {
	AuthURL string
	State   string
}

type InitiateOAuthLoginUseCase struct {
	manager    OAuthServiceManager
	stateStore OAuthStateStore
	pkce       PKCEGenerator
	logger     logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	manager OAuthServiceManager,
	stateStore OAuthStateStore,
	pkce PKCEGenerator,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		manager:    manager,
		stateStore: stateStore,
		pkce:       pkce,
		logger:     logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(ctx context.Context, cmd InitiateOAuthLoginCommand) (*InitiateOAuthLoginResult, error) {
	svc, err := uc.manager.Get(cmd.Provider)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported provider: %s", cmd.Provider))
	}

	verifier, challenge, err := uc.pkce.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate PKCE pair", "error", err)
		return nil, fmt.Errorf("failed to generate PKCE pair: %w", err)
	}

	state := uuid.NewString()
	if err := uc.stateStore.Save(ctx, state, OAuthState{
		Provider:     cmd.Provider,
		Schema:       cmd.Schema,
		CodeVerifier: verifier,
	}, oauthStateTTL); err != nil {
		uc.logger.Errorw("failed to save oauth state", "error", err)
		return nil, fmt.Errorf("failed to save oauth state: %w", err)
	}

	return &InitiateOAuthLoginResult{
		AuthURL: svc.AuthCodeURL(state, challenge),
		State:   state,
	}, nil
}
