package contact

import "time"

// Contact is a person at a client domain, ingested from provider mailboxes.
// Each contact belongs to exactly one client domain.
type Contact struct {
	ID             uint
	ClientDomainID uint
	Email          string
	FirstName      string
	LastName       string
	Title          string
	Phone          string
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClientDomain is an external company/domain the tenant's staff communicate with.
type ClientDomain struct {
	ID               uint
	Domain           string
	OrganizationName string
	IsSuppressed     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DomainMapping is a direct, persistent association between a provider user
// and a client domain. It is the strongest of the four visibility grants.
type DomainMapping struct {
	ID             uint
	ClientDomainID uint
	ProviderUserID uint
	IsDeleted      bool
	CreatedAt      time.Time
}

// EmailMessage is one ingested message involving a contact. Activity views
// filter messages by the provider users and time window the caller's grant
// resolves to.
type EmailMessage struct {
	ID             uint
	ContactID      uint
	ProviderUserID uint
	Subject        string
	Snippet        string
	HasAttachment  bool
	SentAt         time.Time
}
