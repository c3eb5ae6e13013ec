package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	apperrors "github.com/recovvo-inc/recovvo/internal/shared/errors"
)

func liveSession(refreshToken string) *user.Session {
	return &user.Session{
		ID:               "sess-1",
		UserID:           1,
		RefreshTokenHash: hashRefreshToken(refreshToken),
		ExpiresAt:        biztime.NowUTC().Add(24 * time.Hour),
	}
}

func TestRefreshToken_RotatesStoredDigest(t *testing.T) {
	session := liveSession("old-refresh")
	var updated *user.Session

	jwt := &mockJWTService{
		parseRefreshFunc: func(token string) (*TokenClaims, error) {
			return &TokenClaims{UserID: 1, SessionID: "sess-1", Role: user.RoleMember, Schema: testSchema}, nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, schema string, id uint) (*user.User, error) {
			return activeLocalUser(), nil
		},
	}
	sessionRepo := &mockSessionRepo{
		getByIDFunc: func(ctx context.Context, schema, sessionID string) (*user.Session, error) {
			return session, nil
		},
		updateFunc: func(ctx context.Context, schema string, s *user.Session) error {
			updated = s
			return nil
		},
	}

	uc := NewRefreshTokenUseCase(userRepo, sessionRepo, jwt, &mockLogger{})
	result, err := uc.Execute(context.Background(), RefreshTokenCommand{
		Schema:       testSchema,
		RefreshToken: "old-refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, "refresh-1", result.RefreshToken)
	require.NotNil(t, updated)
	// The old refresh token no longer matches the stored digest.
	assert.Equal(t, hashRefreshToken("refresh-1"), updated.RefreshTokenHash)
	assert.NotEqual(t, hashRefreshToken("old-refresh"), updated.RefreshTokenHash)
}

func TestRefreshToken_ReplayedTokenRejected(t *testing.T) {
	// The session digest was already rotated past this token.
	session := liveSession("newer-refresh")

	jwt := &mockJWTService{
		parseRefreshFunc: func(token string) (*TokenClaims, error) {
			return &TokenClaims{UserID: 1, SessionID: "sess-1", Role: user.RoleMember, Schema: testSchema}, nil
		},
	}
	sessionRepo := &mockSessionRepo{
		getByIDFunc: func(ctx context.Context, schema, sessionID string) (*user.Session, error) {
			return session, nil
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepo{}, sessionRepo, jwt, &mockLogger{})
	_, err := uc.Execute(context.Background(), RefreshTokenCommand{
		Schema:       testSchema,
		RefreshToken: "old-refresh",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsAppError(err))
}

func TestRefreshToken_ExpiredSessionRejected(t *testing.T) {
	session := liveSession("old-refresh")
	session.ExpiresAt = biztime.NowUTC().Add(-time.Hour)

	jwt := &mockJWTService{
		parseRefreshFunc: func(token string) (*TokenClaims, error) {
			return &TokenClaims{UserID: 1, SessionID: "sess-1", Role: user.RoleMember, Schema: testSchema}, nil
		},
	}
	sessionRepo := &mockSessionRepo{
		getByIDFunc: func(ctx context.Context, schema, sessionID string) (*user.Session, error) {
			return session, nil
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepo{}, sessionRepo, jwt, &mockLogger{})
	_, err := uc.Execute(context.Background(), RefreshTokenCommand{
		Schema:       testSchema,
		RefreshToken: "old-refresh",
	})

	require.Error(t, err)
}

func TestRefreshToken_GarbageTokenRejected(t *testing.T) {
	jwt := &mockJWTService{}

	uc := NewRefreshTokenUseCase(&mockUserRepo{}, &mockSessionRepo{}, jwt, &mockLogger{})
	_, err := uc.Execute(context.Background(), RefreshTokenCommand{
		Schema:       testSchema,
		RefreshToken: "not-a-jwt",
	})

	require.Error(t, err)
}
