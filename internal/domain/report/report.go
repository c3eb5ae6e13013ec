// Package report holds the append-only event log and the per-user daily
// usage/search aggregates maintained by the event pipeline.
package report

import "time"

// EventLog is one recorded user action. Rows are append-only; the pipeline
// creates them and nothing ever updates them.
type EventLog struct {
	ID         uint
	UserID     uint
	UserRole   string
	EventName  string
	Properties map[string]any
	CreatedAt  time.Time
}

// UsageReport is the per-(user, day) aggregate row. Counters are mutated via
// upsert-with-add; replaying an event increments, never overwrites.
type UsageReport struct {
	ID                uint
	UserID            uint
	ReportDate        time.Time
	Searches          int64
	EmailsReviewed    int64
	ContactExports    int64
	AttachmentExports int64
	UpdatedAt         time.Time
}

// UsageIncrement is the delta folded into a usage report row.
type UsageIncrement struct {
	UserID            uint
	ReportDate        time.Time
	Searches          int64
	EmailsReviewed    int64
	ContactExports    int64
	AttachmentExports int64
}

// Add accumulates another increment for the same (user, day) key.
func (u *UsageIncrement) Add(other UsageIncrement) {
	u.Searches += other.Searches
	u.EmailsReviewed += other.EmailsReviewed
	u.ContactExports += other.ContactExports
	u.AttachmentExports += other.AttachmentExports
}

// SearchReport is one captured search, stored without aggregation.
type SearchReport struct {
	ID          uint
	UserID      uint
	EventName   string
	SearchQuery string
	CreatedAt   time.Time
}
