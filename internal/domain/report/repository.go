package report

import (
	"context"
	"time"
)

// EventLogRepository persists raw event rows.
type EventLogRepository interface {
	// InsertBatch writes the rows and returns them with DB-assigned IDs and
	// timestamps populated.
	InsertBatch(ctx context.Context, schema string, events []*EventLog) ([]*EventLog, error)
	List(ctx context.Context, schema string, userID uint, from, to time.Time, offset, limit int) ([]*EventLog, int64, error)
}

// UsageReportRepository maintains per-(user, day) aggregates.
type UsageReportRepository interface {
	// IncrementDaily atomically adds the increment to the (user, day) row,
	// inserting it if absent. Concurrent increments for the same key must
	// both be applied.
	IncrementDaily(ctx context.Context, schema string, inc UsageIncrement) error
	ListByRange(ctx context.Context, schema string, userIDs []uint, from, to time.Time) ([]*UsageReport, error)
}

// SearchReportRepository stores individual search events.
type SearchReportRepository interface {
	InsertBatch(ctx context.Context, schema string, reports []*SearchReport) error
	ListByRange(ctx context.Context, schema string, userIDs []uint, from, to time.Time, offset, limit int) ([]*SearchReport, int64, error)
}
