package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type LogoutCommand struct {
	Schema    string
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, logger: logger}
}

// Execute deletes the session row, invalidating its refresh token. Logging
// out an already-gone session succeeds.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Delete(ctx, cmd.Schema, cmd.SessionID); err != nil {
		if stderrors.Is(err, user.ErrSessionNotFound) {
			return nil
		}
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
