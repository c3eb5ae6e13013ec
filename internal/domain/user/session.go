package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
)

// Session is an authenticated browser/device session. Refresh tokens are
// bound to the session row; deleting the row invalidates the refresh token.
type Session struct {
	ID               string
	UserID           uint
	IPAddress        string
	UserAgent        string
	RefreshTokenHash string
	ExpiresAt        time.Time
	LastActivityAt   time.Time
	CreatedAt        time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, ErrUserIDRequired
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
		CreatedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = biztime.NowUTC()
}
