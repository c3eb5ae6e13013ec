package models

import (
	"time"

	"gorm.io/datatypes"
)

// EventLogModel rows are append-only; nothing updates them after insert.
type EventLogModel struct {
	ID         uint           `gorm:"primarykey"`
	UserID     uint           `gorm:"not null;index:idx_event_user_created"`
	UserRole   string         `gorm:"size:20"`
	EventName  string         `gorm:"not null;size:100;index"`
	Properties datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_event_user_created"`
}

func (EventLogModel) TableName() string {
	return "event_logs"
}

// UsageReportModel has one row per (user, day), maintained by an atomic
// upsert-with-add.
type UsageReportModel struct {
	ID                uint      `gorm:"primarykey"`
	UserID            uint      `gorm:"not null;uniqueIndex:idx_usage_user_date"`
	ReportDate        time.Time `gorm:"not null;type:date;uniqueIndex:idx_usage_user_date"`
	Searches          int64     `gorm:"not null;default:0"`
	EmailsReviewed    int64     `gorm:"not null;default:0"`
	ContactExports    int64     `gorm:"not null;default:0"`
	AttachmentExports int64     `gorm:"not null;default:0"`
	UpdatedAt         time.Time
}

func (UsageReportModel) TableName() string {
	return "usage_reports"
}

type SearchReportModel struct {
	ID          uint      `gorm:"primarykey"`
	UserID      uint      `gorm:"not null;index:idx_search_user_created"`
	EventName   string    `gorm:"not null;size:100"`
	SearchQuery string    `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"not null;index:idx_search_user_created"`
}

func (SearchReportModel) TableName() string {
	return "search_reports"
}
