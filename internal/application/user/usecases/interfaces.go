package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
)

// TokenPair is an access/refresh token set issued for one session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims are the verified claims carried by either token kind.
type TokenClaims struct {
	UserID    uint
	SessionID string
	Role      user.Role
	Schema    string
}

// JWTService signs and verifies tokens. Access and refresh tokens use
// distinct signing secrets, so one kind can never pass as the other.
type JWTService interface {
	GeneratePair(userID uint, sessionID string, role user.Role, schema string) (*TokenPair, error)
	ParseAccess(token string) (*TokenClaims, error)
	ParseRefresh(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies local-login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) error
}

// OAuthProfile is the identity returned by a provider after code exchange.
type OAuthProfile struct {
	Email     string
	FirstName string
	LastName  string
	Provider  user.AuthProvider
}

// OAuthService wraps one provider's authorization-code flow.
type OAuthService interface {
	Provider() user.AuthProvider
	AuthCodeURL(state, codeChallenge string) string
	ExchangeProfile(ctx context.Context, code, codeVerifier string) (*OAuthProfile, error)
}

// OAuthServiceManager resolves the service for a provider name.
type OAuthServiceManager interface {
	Get(provider string) (OAuthService, error)
}

// OAuthState is the transient flow state saved between initiate and callback.
type OAuthState struct {
	Provider     string `json:"provider"`
	Schema       string `json:"schema"`
	CodeVerifier string `json:"codeVerifier"`
	RedirectURI  string `json:"redirectUri"`
}

// OAuthStateStore holds flow state under the opaque state token. Consume
// deletes the entry, so each state token authorizes exactly one callback.
type OAuthStateStore interface {
	Save(ctx context.Context, state string, data OAuthState, ttl time.Duration) error
	Consume(ctx context.Context, state string) (*OAuthState, error)
}

// hashRefreshToken derives the stored digest for a refresh token. Only the
// digest is persisted; a leaked session row cannot be replayed.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
