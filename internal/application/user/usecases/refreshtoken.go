package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type RefreshTokenCommand struct {
	Schema       string
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	jwtService  JWTService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	jwtService JWTService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Execute rotates the refresh token: the presented token must verify
// against its signing secret AND match the digest stored on a live session
// row. On success the session gets a new digest, so the old refresh token
// is single-use.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResultDTO, error) {
	claims, err := uc.jwtService.ParseRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.Schema, claims.SessionID)
	if err != nil {
		if stderrors.Is(err, user.ErrSessionNotFound) {
			return nil, errors.NewUnauthorizedError("session expired")
		}
		uc.logger.Errorw("failed to load session", "error", err, "session_id", claims.SessionID)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.IsExpired() || session.RefreshTokenHash != hashRefreshToken(cmd.RefreshToken) {
		return nil, errors.NewUnauthorizedError("session expired")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.Schema, session.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for refresh", "error", err, "user_id", session.UserID)
		return nil, errors.NewUnauthorizedError("session expired")
	}
	if !u.IsActive {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	pair, err := uc.jwtService.GeneratePair(u.ID, session.ID, u.Role, cmd.Schema)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", u.ID)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.RefreshTokenHash = hashRefreshToken(pair.RefreshToken)
	session.UpdateActivity()
	if err := uc.sessionRepo.Update(ctx, cmd.Schema, session); err != nil {
		uc.logger.Errorw("failed to rotate session", "error", err, "session_id", session.ID)
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return &dto.AuthResultDTO{
		User:         dto.ToUserDTO(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
