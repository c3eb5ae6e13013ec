package user

import (
	"context"
	"time"
)

// Repository manages provider users inside a tenant schema.
type Repository interface {
	Create(ctx context.Context, schema string, u *User) error
	GetByID(ctx context.Context, schema string, id uint) (*User, error)
	GetByEmail(ctx context.Context, schema string, email string) (*User, error)
	List(ctx context.Context, schema string, offset, limit int) ([]*User, int64, error)
	Update(ctx context.Context, schema string, u *User) error
}

// SessionRepository manages session rows inside a tenant schema.
type SessionRepository interface {
	Create(ctx context.Context, schema string, s *Session) error
	GetByID(ctx context.Context, schema string, sessionID string) (*Session, error)
	GetByRefreshTokenHash(ctx context.Context, schema string, hash string) (*Session, error)
	Update(ctx context.Context, schema string, s *Session) error
	Delete(ctx context.Context, schema string, sessionID string) error
	DeleteExpired(ctx context.Context, schema string) error
}

// SupervisorMappingRepository reads supervisor -> subordinate edges.
// Only one level is resolved; subordinate-of-subordinate chains are not
// traversed.
type SupervisorMappingRepository interface {
	Create(ctx context.Context, schema string, m *SupervisorMapping) error
	ListSubordinateIDs(ctx context.Context, schema string, supervisorID uint) ([]uint, error)
	ListSupervisorIDs(ctx context.Context, schema string, userID uint) ([]uint, error)
	SoftDelete(ctx context.Context, schema string, id uint) error
}

// AliasMappingRepository reads delegated mailbox grants.
type AliasMappingRepository interface {
	Create(ctx context.Context, schema string, m *AliasMapping) error
	GetByID(ctx context.Context, schema string, id uint) (*AliasMapping, error)
	// ListActiveForUser returns mappings whose access window covers at.
	ListActiveForUser(ctx context.Context, schema string, userID uint, at time.Time) ([]*AliasMapping, error)
	Update(ctx context.Context, schema string, m *AliasMapping) error
}

// CollaboratorMappingRepository reads peer visibility grants.
type CollaboratorMappingRepository interface {
	Create(ctx context.Context, schema string, m *CollaboratorMapping) error
	// ListActivePeerIDs returns the peer user IDs of active, in-window
	// collaborations involving userID on either side.
	ListActivePeerIDs(ctx context.Context, schema string, userID uint, at time.Time) ([]uint, error)
	Update(ctx context.Context, schema string, m *CollaboratorMapping) error
}
