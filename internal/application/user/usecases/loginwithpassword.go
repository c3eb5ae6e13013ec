package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Schema    string
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginWithPasswordUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	jwtService  JWTService
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.AuthResultDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Schema, cmd.Email)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password so the response does not
			// reveal which emails exist.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load user", "error", err, "schema", cmd.Schema)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !u.IsActive {
		return nil, errors.NewForbiddenError("account is deactivated")
	}
	if u.Provider != user.ProviderLocal || u.PasswordHash == "" {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := uc.hasher.Verify(u.PasswordHash, cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	result, err := issueSession(ctx, uc.sessionRepo, uc.jwtService, uc.jwtConfig, cmd.Schema, u, cmd.IPAddress, cmd.UserAgent)
	if err != nil {
		uc.logger.Errorw("failed to establish session", "error", err, "user_id", u.ID)
		return nil, err
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, cmd.Schema, u); err != nil {
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", u.ID)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID, "schema", cmd.Schema)
	return result, nil
}

// issueSession creates a session row bound to a fresh token pair. Shared by
// password login, OAuth callback, and refresh rotation.
func issueSession(
	ctx context.Context,
	sessionRepo user.SessionRepository,
	jwtService JWTService,
	jwtConfig config.JWTConfig,
	schema string,
	u *user.User,
	ipAddress, userAgent string,
) (*dto.AuthResultDTO, error) {
	expiresAt := biztime.NowUTC().Add(time.Duration(jwtConfig.RefreshExpDays) * 24 * time.Hour)
	session, err := user.NewSession(u.ID, ipAddress, userAgent, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	pair, err := jwtService.GeneratePair(u.ID, session.ID, u.Role, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.RefreshTokenHash = hashRefreshToken(pair.RefreshToken)
	if err := sessionRepo.Create(ctx, schema, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
