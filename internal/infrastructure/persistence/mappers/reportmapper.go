package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/recovvo-inc/recovvo/internal/domain/report"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
)

func EventLogToModel(e *report.EventLog) (*models.EventLogModel, error) {
	var props []byte
	if e.Properties != nil {
		var err error
		props, err = json.Marshal(e.Properties)
		if err != nil {
			return nil, fmt.Errorf("marshal event properties: %w", err)
		}
	}
	return &models.EventLogModel{
		ID:         e.ID,
		UserID:     e.UserID,
		UserRole:   e.UserRole,
		EventName:  e.EventName,
		Properties: props,
		CreatedAt:  e.CreatedAt,
	}, nil
}

func EventLogToEntity(m *models.EventLogModel) (*report.EventLog, error) {
	if m == nil {
		return nil, nil
	}
	var props map[string]any
	if len(m.Properties) > 0 {
		if err := json.Unmarshal(m.Properties, &props); err != nil {
			return nil, fmt.Errorf("unmarshal event properties: %w", err)
		}
	}
	return &report.EventLog{
		ID:         m.ID,
		UserID:     m.UserID,
		UserRole:   m.UserRole,
		EventName:  m.EventName,
		Properties: props,
		CreatedAt:  m.CreatedAt,
	}, nil
}

func UsageReportToEntity(m *models.UsageReportModel) *report.UsageReport {
	if m == nil {
		return nil
	}
	return &report.UsageReport{
		ID:                m.ID,
		UserID:            m.UserID,
		ReportDate:        m.ReportDate,
		Searches:          m.Searches,
		EmailsReviewed:    m.EmailsReviewed,
		ContactExports:    m.ContactExports,
		AttachmentExports: m.AttachmentExports,
		UpdatedAt:         m.UpdatedAt,
	}
}

func UsageReportsToEntities(ms []*models.UsageReportModel) []*report.UsageReport {
	out := make([]*report.UsageReport, 0, len(ms))
	for _, m := range ms {
		out = append(out, UsageReportToEntity(m))
	}
	return out
}

func SearchReportToModel(s *report.SearchReport) *models.SearchReportModel {
	return &models.SearchReportModel{
		ID:          s.ID,
		UserID:      s.UserID,
		EventName:   s.EventName,
		SearchQuery: s.SearchQuery,
		CreatedAt:   s.CreatedAt,
	}
}

func SearchReportToEntity(m *models.SearchReportModel) *report.SearchReport {
	if m == nil {
		return nil
	}
	return &report.SearchReport{
		ID:          m.ID,
		UserID:      m.UserID,
		EventName:   m.EventName,
		SearchQuery: m.SearchQuery,
		CreatedAt:   m.CreatedAt,
	}
}

func SearchReportsToEntities(ms []*models.SearchReportModel) []*report.SearchReport {
	out := make([]*report.SearchReport, 0, len(ms))
	for _, m := range ms {
		out = append(out, SearchReportToEntity(m))
	}
	return out
}
