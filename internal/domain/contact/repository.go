package contact

import (
	"context"
	"time"
)

// Filter narrows contact listings. ClientDomainIDs is the caller's resolved
// visibility set; listings never return contacts outside it.
type Filter struct {
	ClientDomainIDs []uint
	Search          string
	IncludeDeleted  bool
	Offset          int
	Limit           int
}

// Repository manages contacts inside a tenant schema.
type Repository interface {
	GetByID(ctx context.Context, schema string, id uint) (*Contact, error)
	List(ctx context.Context, schema string, filter Filter) ([]*Contact, int64, error)
	Update(ctx context.Context, schema string, c *Contact) error
	SoftDelete(ctx context.Context, schema string, id uint) error
}

// ClientDomainRepository manages client domains inside a tenant schema.
type ClientDomainRepository interface {
	GetByID(ctx context.Context, schema string, id uint) (*ClientDomain, error)
	List(ctx context.Context, schema string, offset, limit int) ([]*ClientDomain, int64, error)
	SetSuppressed(ctx context.Context, schema string, id uint, suppressed bool) error
}

// DomainMappingRepository reads provider-user <-> client-domain grants.
type DomainMappingRepository interface {
	Create(ctx context.Context, schema string, m *DomainMapping) error
	// ListDomainIDsByUserIDs returns the client domain IDs mapped to any of
	// the given provider users.
	ListDomainIDsByUserIDs(ctx context.Context, schema string, userIDs []uint) ([]uint, error)
	// ListUserIDsByDomainID returns the provider users mapped to a domain.
	ListUserIDsByDomainID(ctx context.Context, schema string, domainID uint) ([]uint, error)
	SoftDelete(ctx context.Context, schema string, id uint) error
}

// MessageScope restricts one provider user's messages to a time range. Nil
// bounds are unbounded on that side.
type MessageScope struct {
	ProviderUserID uint
	From           *time.Time
	To             *time.Time
}

// EmailMessageRepository reads ingested messages for activity views.
type EmailMessageRepository interface {
	// ListByContact returns messages for a contact restricted per scope: a
	// message is visible only when its provider user's own scope admits its
	// sent date.
	ListByContact(ctx context.Context, schema string, contactID uint, scopes []MessageScope, offset, limit int) ([]*EmailMessage, int64, error)
}
