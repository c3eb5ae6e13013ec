package mappers

import (
	"github.com/recovvo-inc/recovvo/internal/domain/contact"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
)

func ContactToEntity(m *models.ContactModel) *contact.Contact {
	if m == nil {
		return nil
	}
	return &contact.Contact{
		ID:             m.ID,
		ClientDomainID: m.ClientDomainID,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Title:          m.Title,
		Phone:          m.Phone,
		IsDeleted:      m.IsDeleted,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ContactsToEntities(ms []*models.ContactModel) []*contact.Contact {
	out := make([]*contact.Contact, 0, len(ms))
	for _, m := range ms {
		out = append(out, ContactToEntity(m))
	}
	return out
}

func ClientDomainToEntity(m *models.ClientDomainModel) *contact.ClientDomain {
	if m == nil {
		return nil
	}
	return &contact.ClientDomain{
		ID:               m.ID,
		Domain:           m.Domain,
		OrganizationName: m.OrganizationName,
		IsSuppressed:     m.IsSuppressed,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ClientDomainsToEntities(ms []*models.ClientDomainModel) []*contact.ClientDomain {
	out := make([]*contact.ClientDomain, 0, len(ms))
	for _, m := range ms {
		out = append(out, ClientDomainToEntity(m))
	}
	return out
}

func DomainMappingToModel(m *contact.DomainMapping) *models.DomainMappingModel {
	return &models.DomainMappingModel{
		ID:             m.ID,
		ClientDomainID: m.ClientDomainID,
		ProviderUserID: m.ProviderUserID,
		IsDeleted:      m.IsDeleted,
		CreatedAt:      m.CreatedAt,
	}
}

func DomainMappingToEntity(m *models.DomainMappingModel) *contact.DomainMapping {
	if m == nil {
		return nil
	}
	return &contact.DomainMapping{
		ID:             m.ID,
		ClientDomainID: m.ClientDomainID,
		ProviderUserID: m.ProviderUserID,
		IsDeleted:      m.IsDeleted,
		CreatedAt:      m.CreatedAt,
	}
}

func EmailMessageToEntity(m *models.EmailMessageModel) *contact.EmailMessage {
	if m == nil {
		return nil
	}
	return &contact.EmailMessage{
		ID:             m.ID,
		ContactID:      m.ContactID,
		ProviderUserID: m.ProviderUserID,
		Subject:        m.Subject,
		Snippet:        m.Snippet,
		HasAttachment:  m.HasAttachment,
		SentAt:         m.SentAt,
	}
}

func EmailMessagesToEntities(ms []*models.EmailMessageModel) []*contact.EmailMessage {
	out := make([]*contact.EmailMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, EmailMessageToEntity(m))
	}
	return out
}
