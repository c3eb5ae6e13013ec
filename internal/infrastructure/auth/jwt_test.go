package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
)

func testService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		AccessSecret:     "access-secret-for-tests",
		RefreshSecret:    "refresh-secret-for-tests",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})
}

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc := testService()

	pair, err := svc.GeneratePair(42, "session-1", user.RoleSupervisor, "acme_corp_com")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, user.RoleSupervisor, claims.Role)
	assert.Equal(t, "acme_corp_com", claims.Schema)

	claims, err = svc.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestJWTService_TokenKindsAreNotInterchangeable(t *testing.T) {
	svc := testService()

	pair, err := svc.GeneratePair(7, "session-2", user.RoleMember, "acme_corp_com")
	require.NoError(t, err)

	_, err = svc.ParseAccess(pair.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ParseRefresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_TokenTypeClaimGuardsSharedSecret(t *testing.T) {
	// Even with identical secrets the token_type claim keeps the two kinds
	// apart.
	svc := NewJWTService(&config.JWTConfig{
		AccessSecret:     "one-secret-for-both",
		RefreshSecret:    "one-secret-for-both",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})

	pair, err := svc.GeneratePair(7, "session-4", user.RoleMember, "acme_corp_com")
	require.NoError(t, err)

	_, err = svc.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := testService()
	other := NewJWTService(&config.JWTConfig{
		AccessSecret:     "some-other-secret",
		RefreshSecret:    "another-other-secret",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})

	pair, err := other.GeneratePair(7, "session-3", user.RoleMember, "acme_corp_com")
	require.NoError(t, err)

	_, err = svc.ParseAccess(pair.AccessToken)
	assert.Error(t, err)

	_, err = svc.ParseAccess("not-a-token")
	assert.Error(t, err)
}
