package dto

import (
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
)

type UserDTO struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"`
	Provider    string     `json:"provider"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		Provider:    string(u.Provider),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

// AuthResultDTO is returned by login, OAuth callback, and refresh.
type AuthResultDTO struct {
	User         *UserDTO `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int64    `json:"expiresIn"`
}

// AliasMappingDTO exposes a delegated mailbox grant with both windows.
type AliasMappingDTO struct {
	ID                             uint                       `json:"id"`
	UserID                         uint                       `json:"userId"`
	AliasUserID                    uint                       `json:"aliasUserId"`
	AliasStartDate                 *time.Time                 `json:"aliasStartDate"`
	AliasEndDate                   *time.Time                 `json:"aliasEndDate"`
	HistoricalEmailAccessStartDate *time.Time                 `json:"historicalEmailAccessStartDate"`
	HistoricalEmailAccessEndDate   *time.Time                 `json:"historicalEmailAccessEndDate"`
	MappingHistory                 []user.MappingHistoryEntry `json:"mappingHistory"`
}

func ToAliasMappingDTO(m *user.AliasMapping) *AliasMappingDTO {
	return &AliasMappingDTO{
		ID:                             m.ID,
		UserID:                         m.UserID,
		AliasUserID:                    m.AliasUserID,
		AliasStartDate:                 m.AliasStartDate,
		AliasEndDate:                   m.AliasEndDate,
		HistoricalEmailAccessStartDate: m.HistoricalEmailAccessStartDate,
		HistoricalEmailAccessEndDate:   m.HistoricalEmailAccessEndDate,
		MappingHistory:                 m.MappingHistory,
	}
}
