package models

import "time"

type ClientDomainModel struct {
	ID               uint   `gorm:"primarykey"`
	Domain           string `gorm:"uniqueIndex;not null;size:255"`
	OrganizationName string `gorm:"size:255"`
	IsSuppressed     bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ClientDomainModel) TableName() string {
	return "client_domains"
}

type ContactModel struct {
	ID             uint   `gorm:"primarykey"`
	ClientDomainID uint   `gorm:"not null;index"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	FirstName      string `gorm:"size:100"`
	LastName       string `gorm:"size:100"`
	Title          string `gorm:"size:255"`
	Phone          string `gorm:"size:50"`
	IsDeleted      bool   `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ContactModel) TableName() string {
	return "contacts"
}

type DomainMappingModel struct {
	ID             uint `gorm:"primarykey"`
	ClientDomainID uint `gorm:"not null;index;uniqueIndex:idx_domain_user"`
	ProviderUserID uint `gorm:"not null;index;uniqueIndex:idx_domain_user"`
	IsDeleted      bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

func (DomainMappingModel) TableName() string {
	return "domain_mappings"
}

type EmailMessageModel struct {
	ID             uint   `gorm:"primarykey"`
	ContactID      uint   `gorm:"not null;index:idx_contact_sent"`
	ProviderUserID uint   `gorm:"not null;index"`
	Subject        string `gorm:"size:998"`
	Snippet        string `gorm:"size:1000"`
	HasAttachment  bool   `gorm:"not null;default:false"`
	SentAt         time.Time `gorm:"not null;index:idx_contact_sent"`
}

func (EmailMessageModel) TableName() string {
	return "email_messages"
}
