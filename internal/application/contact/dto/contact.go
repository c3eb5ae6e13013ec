package dto

import (
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/contact"
)

type ContactDTO struct {
	ID             uint      `json:"id"`
	ClientDomainID uint      `json:"clientDomainId"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Title          string    `json:"title"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToContactDTO(c *contact.Contact) *ContactDTO {
	return &ContactDTO{
		ID:             c.ID,
		ClientDomainID: c.ClientDomainID,
		Email:          c.Email,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Title:          c.Title,
		Phone:          c.Phone,
		CreatedAt:      c.CreatedAt,
	}
}

func ToContactDTOs(contacts []*contact.Contact) []*ContactDTO {
	out := make([]*ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ToContactDTO(c))
	}
	return out
}

type ClientDomainDTO struct {
	ID               uint   `json:"id"`
	Domain           string `json:"domain"`
	OrganizationName string `json:"organizationName"`
	IsSuppressed     bool   `json:"isSuppressed"`
}

func ToClientDomainDTO(d *contact.ClientDomain) *ClientDomainDTO {
	return &ClientDomainDTO{
		ID:               d.ID,
		Domain:           d.Domain,
		OrganizationName: d.OrganizationName,
		IsSuppressed:     d.IsSuppressed,
	}
}

func ToClientDomainDTOs(domains []*contact.ClientDomain) []*ClientDomainDTO {
	out := make([]*ClientDomainDTO, 0, len(domains))
	for _, d := range domains {
		out = append(out, ToClientDomainDTO(d))
	}
	return out
}

// EmailMessageDTO is one activity row. Bodies are never exposed, only
// subject and snippet.
type EmailMessageDTO struct {
	ID             uint      `json:"id"`
	ProviderUserID uint      `json:"providerUserId"`
	Subject        string    `json:"subject"`
	Snippet        string    `json:"snippet"`
	HasAttachment  bool      `json:"hasAttachment"`
	SentAt         time.Time `json:"sentAt"`
}

func ToEmailMessageDTO(m *contact.EmailMessage) *EmailMessageDTO {
	return &EmailMessageDTO{
		ID:             m.ID,
		ProviderUserID: m.ProviderUserID,
		Subject:        m.Subject,
		Snippet:        m.Snippet,
		HasAttachment:  m.HasAttachment,
		SentAt:         m.SentAt,
	}
}

func ToEmailMessageDTOs(messages []*contact.EmailMessage) []*EmailMessageDTO {
	out := make([]*EmailMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToEmailMessageDTO(m))
	}
	return out
}
