package dto

import (
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/report"
)

type UsageReportDTO struct {
	UserID            uint   `json:"userId"`
	ReportDate        string `json:"reportDate"`
	Searches          int64  `json:"searches"`
	EmailsReviewed    int64  `json:"emailsReviewed"`
	ContactExports    int64  `json:"contactExports"`
	AttachmentExports int64  `json:"attachmentExports"`
}

func ToUsageReportDTO(r *report.UsageReport) *UsageReportDTO {
	return &UsageReportDTO{
		UserID:            r.UserID,
		ReportDate:        r.ReportDate.Format("2006-01-02"),
		Searches:          r.Searches,
		EmailsReviewed:    r.EmailsReviewed,
		ContactExports:    r.ContactExports,
		AttachmentExports: r.AttachmentExports,
	}
}

func ToUsageReportDTOs(reports []*report.UsageReport) []*UsageReportDTO {
	out := make([]*UsageReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToUsageReportDTO(r))
	}
	return out
}

type SearchReportDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	EventName   string    `json:"eventName"`
	SearchQuery string    `json:"searchQuery"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToSearchReportDTO(r *report.SearchReport) *SearchReportDTO {
	return &SearchReportDTO{
		ID:          r.ID,
		UserID:      r.UserID,
		EventName:   r.EventName,
		SearchQuery: r.SearchQuery,
		CreatedAt:   r.CreatedAt,
	}
}

func ToSearchReportDTOs(reports []*report.SearchReport) []*SearchReportDTO {
	out := make([]*SearchReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToSearchReportDTO(r))
	}
	return out
}
