package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/domain/user"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         string(u.Role),
		Provider:     string(u.Provider),
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func UserToEntity(m *models.UserModel) *user.User {
	if m == nil {
		return nil
	}
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Role:         user.Role(m.Role),
		Provider:     user.AuthProvider(m.Provider),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func UsersToEntities(ms []*models.UserModel) []*user.User {
	out := make([]*user.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, UserToEntity(m))
	}
	return out
}

func SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:               s.ID,
		UserID:           s.UserID,
		IPAddress:        s.IPAddress,
		UserAgent:        s.UserAgent,
		RefreshTokenHash: s.RefreshTokenHash,
		ExpiresAt:        s.ExpiresAt,
		LastActivityAt:   s.LastActivityAt,
		CreatedAt:        s.CreatedAt,
	}
}

func SessionToEntity(m *models.SessionModel) *user.Session {
	if m == nil {
		return nil
	}
	return &user.Session{
		ID:               m.ID,
		UserID:           m.UserID,
		IPAddress:        m.IPAddress,
		UserAgent:        m.UserAgent,
		RefreshTokenHash: m.RefreshTokenHash,
		ExpiresAt:        m.ExpiresAt,
		LastActivityAt:   m.LastActivityAt,
		CreatedAt:        m.CreatedAt,
	}
}

func SupervisorMappingToModel(m *user.SupervisorMapping) *models.SupervisorMappingModel {
	return &models.SupervisorMappingModel{
		ID:           m.ID,
		SupervisorID: m.SupervisorID,
		UserID:       m.UserID,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func SupervisorMappingToEntity(m *models.SupervisorMappingModel) *user.SupervisorMapping {
	if m == nil {
		return nil
	}
	return &user.SupervisorMapping{
		ID:           m.ID,
		SupervisorID: m.SupervisorID,
		UserID:       m.UserID,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func AliasMappingToModel(m *user.AliasMapping) (*models.AliasMappingModel, error) {
	history, err := json.Marshal(m.MappingHistory)
	if err != nil {
		return nil, fmt.Errorf("marshal mapping history: %w", err)
	}
	return &models.AliasMappingModel{
		ID:                             m.ID,
		UserID:                         m.UserID,
		AliasUserID:                    m.AliasUserID,
		AliasStartDate:                 m.AliasStartDate,
		AliasEndDate:                   m.AliasEndDate,
		HistoricalEmailAccessStartDate: m.HistoricalEmailAccessStartDate,
		HistoricalEmailAccessEndDate:   m.HistoricalEmailAccessEndDate,
		MappingHistory:                 history,
		IsDeleted:                      m.IsDeleted,
		CreatedAt:                      m.CreatedAt,
		UpdatedAt:                      m.UpdatedAt,
	}, nil
}

func AliasMappingToEntity(m *models.AliasMappingModel) (*user.AliasMapping, error) {
	if m == nil {
		return nil, nil
	}
	var history []user.MappingHistoryEntry
	if len(m.MappingHistory) > 0 {
		if err := json.Unmarshal(m.MappingHistory, &history); err != nil {
			return nil, fmt.Errorf("unmarshal mapping history: %w", err)
		}
	}
	return &user.AliasMapping{
		ID:                             m.ID,
		UserID:                         m.UserID,
		AliasUserID:                    m.AliasUserID,
		AliasStartDate:                 m.AliasStartDate,
		AliasEndDate:                   m.AliasEndDate,
		HistoricalEmailAccessStartDate: m.HistoricalEmailAccessStartDate,
		HistoricalEmailAccessEndDate:   m.HistoricalEmailAccessEndDate,
		MappingHistory:                 history,
		IsDeleted:                      m.IsDeleted,
		CreatedAt:                      m.CreatedAt,
		UpdatedAt:                      m.UpdatedAt,
	}, nil
}

func CollaboratorMappingToModel(m *user.CollaboratorMapping) *models.CollaboratorMappingModel {
	return &models.CollaboratorMappingModel{
		ID:             m.ID,
		UserID:         m.UserID,
		CollaboratorID: m.CollaboratorID,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func CollaboratorMappingToEntity(m *models.CollaboratorMappingModel) *user.CollaboratorMapping {
	if m == nil {
		return nil
	}
	return &user.CollaboratorMapping{
		ID:             m.ID,
		UserID:         m.UserID,
		CollaboratorID: m.CollaboratorID,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
