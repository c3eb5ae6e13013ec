// Package auth implements token issuing, password hashing, and the OAuth
// authorization-code flow against the external identity providers.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenType distinguishes access from refresh tokens inside the claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type claims struct {
	UserID    uint      `json:"user_id"`
	SessionID string    `json:"session_id"`
	Role      user.Role `json:"role"`
	Schema    string    `json:"schema"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService signs access and refresh tokens with separate secrets, so a
// refresh token can never be presented as an access token.
type JWTService struct {
	accessSecret     []byte
	refreshSecret    []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		accessSecret:     []byte(cfg.AccessSecret),
		refreshSecret:    []byte(cfg.RefreshSecret),
		accessExpMinutes: cfg.AccessExpMinutes,
		refreshExpDays:   cfg.RefreshExpDays,
	}
}

func (s *JWTService) GeneratePair(userID uint, sessionID string, role user.Role, schema string) (*usecases.TokenPair, error) {
	now := biztime.NowUTC()

	accessExp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)
	accessToken, err := s.sign(userID, sessionID, role, schema, TokenTypeAccess, now, accessExp, s.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshExp := now.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	refreshToken, err := s.sign(userID, sessionID, role, schema, TokenTypeRefresh, now, refreshExp, s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &usecases.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessExp.Sub(now).Seconds()),
	}, nil
}

func (s *JWTService) sign(userID uint, sessionID string, role user.Role, schema string, typ TokenType, now, exp time.Time, secret []byte) (string, error) {
	c := &claims{
		UserID:    userID,
		SessionID: sessionID,
		Role:      role,
		Schema:    schema,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func (s *JWTService) ParseAccess(token string) (*usecases.TokenClaims, error) {
	return s.parse(token, TokenTypeAccess, s.accessSecret)
}

func (s *JWTService) ParseRefresh(token string) (*usecases.TokenClaims, error) {
	return s.parse(token, TokenTypeRefresh, s.refreshSecret)
}

func (s *JWTService) parse(tokenString string, typ TokenType, secret []byte) (*usecases.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if c.TokenType != typ {
		return nil, fmt.Errorf("%w: wrong token type", ErrInvalidToken)
	}
	return &usecases.TokenClaims{
		UserID:    c.UserID,
		SessionID: c.SessionID,
		Role:      c.Role,
		Schema:    c.Schema,
	}, nil
}
