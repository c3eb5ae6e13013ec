package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Role         string `gorm:"not null;size:20;index"`
	Provider     string `gorm:"not null;size:20;default:local"`
	PasswordHash string `gorm:"size:255"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "provider_users"
}

type SessionModel struct {
	ID               string `gorm:"primarykey;size:36"`
	UserID           uint   `gorm:"not null;index"`
	IPAddress        string `gorm:"size:45"`
	UserAgent        string `gorm:"size:512"`
	RefreshTokenHash string `gorm:"not null;size:64;index"`
	ExpiresAt        time.Time
	LastActivityAt   time.Time
	CreatedAt        time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}

type SupervisorMappingModel struct {
	ID           uint `gorm:"primarykey"`
	SupervisorID uint `gorm:"not null;index;uniqueIndex:idx_supervisor_user"`
	UserID       uint `gorm:"not null;index;uniqueIndex:idx_supervisor_user"`
	IsDeleted    bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SupervisorMappingModel) TableName() string {
	return "supervisor_mappings"
}

type AliasMappingModel struct {
	ID                             uint `gorm:"primarykey"`
	UserID                         uint `gorm:"not null;index;uniqueIndex:idx_user_alias"`
	AliasUserID                    uint `gorm:"not null;index;uniqueIndex:idx_user_alias"`
	AliasStartDate                 *time.Time
	AliasEndDate                   *time.Time
	HistoricalEmailAccessStartDate *time.Time
	HistoricalEmailAccessEndDate   *time.Time
	MappingHistory                 datatypes.JSON `gorm:"type:jsonb"`
	IsDeleted                      bool           `gorm:"not null;default:false"`
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

func (AliasMappingModel) TableName() string {
	return "alias_mappings"
}

type CollaboratorMappingModel struct {
	ID             uint `gorm:"primarykey"`
	UserID         uint `gorm:"not null;index;uniqueIndex:idx_user_collaborator"`
	CollaboratorID uint `gorm:"not null;index;uniqueIndex:idx_user_collaborator"`
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CollaboratorMappingModel) TableName() string {
	return "collaborator_mappings"
}
