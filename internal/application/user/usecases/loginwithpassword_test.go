package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
	apperrors "github.com/recovvo-inc/recovvo/internal/shared/errors"
)

const testSchema = "acme_corp_com"

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	}
}

func activeLocalUser() *user.User {
	return &user.User{
		ID:           1,
		Email:        "jane@acme-corp.com",
		Role:         user.RoleMember,
		Provider:     user.ProviderLocal,
		PasswordHash: "hashed:secret123",
		IsActive:     true,
	}
}

func TestLoginWithPassword_Success(t *testing.T) {
	u := activeLocalUser()
	var savedSession *user.Session

	userRepo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, schema, email string) (*user.User, error) {
			assert.Equal(t, testSchema, schema)
			return u, nil
		},
		updateFunc: func(ctx context.Context, schema string, updated *user.User) error {
			return nil
		},
	}
	sessionRepo := &mockSessionRepo{
		createFunc: func(ctx context.Context, schema string, s *user.Session) error {
			savedSession = s
			return nil
		},
	}

	uc := NewLoginWithPasswordUseCase(userRepo, sessionRepo, &mockHasher{}, &mockJWTService{}, testJWTConfig(), &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Schema:   testSchema,
		Email:    "jane@acme-corp.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-1", result.AccessToken)
	assert.Equal(t, "refresh-1", result.RefreshToken)
	require.NotNil(t, savedSession)
	assert.Equal(t, u.ID, savedSession.UserID)
	// Only the digest of the refresh token is stored.
	assert.NotEmpty(t, savedSession.RefreshTokenHash)
	assert.NotEqual(t, result.RefreshToken, savedSession.RefreshTokenHash)
	assert.NotNil(t, u.LastLoginAt)
}

func TestLoginWithPassword_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	sessionRepo := &mockSessionRepo{}

	unknownRepo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, schema, email string) (*user.User, error) {
			return nil, user.ErrUserNotFound
		},
	}
	uc := NewLoginWithPasswordUseCase(unknownRepo, sessionRepo, &mockHasher{}, &mockJWTService{}, testJWTConfig(), &mockLogger{})
	_, errUnknown := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Schema: testSchema, Email: "nobody@acme-corp.com", Password: "whatever",
	})

	knownRepo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, schema, email string) (*user.User, error) {
			return activeLocalUser(), nil
		},
	}
	uc2 := NewLoginWithPasswordUseCase(knownRepo, sessionRepo, &mockHasher{}, &mockJWTService{}, testJWTConfig(), &mockLogger{})
	_, errWrong := uc2.Execute(context.Background(), LoginWithPasswordCommand{
		Schema: testSchema, Email: "jane@acme-corp.com", Password: "wrong",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.True(t, apperrors.IsAppError(errUnknown))
}

func TestLoginWithPassword_InactiveUserForbidden(t *testing.T) {
	u := activeLocalUser()
	u.IsActive = false
	userRepo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, schema, email string) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewLoginWithPasswordUseCase(userRepo, &mockSessionRepo{}, &mockHasher{}, &mockJWTService{}, testJWTConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Schema: testSchema, Email: "jane@acme-corp.com", Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestLoginWithPassword_OAuthAccountCannotPasswordLogin(t *testing.T) {
	u := activeLocalUser()
	u.Provider = user.ProviderGoogle
	u.PasswordHash = ""
	userRepo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, schema, email string) (*user.User, error) {
			return u, nil
		},
	}

	uc := NewLoginWithPasswordUseCase(userRepo, &mockSessionRepo{}, &mockHasher{}, &mockJWTService{}, testJWTConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Schema: testSchema, Email: "jane@acme-corp.com", Password: "secret123",
	})

	require.Error(t, err)
}
