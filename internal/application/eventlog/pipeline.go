package eventlog

import (
	"context"
	"time"

	"github.com/recovvo-inc/recovvo/internal/domain/report"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/config"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// flushTimeout bounds the DB work done for one drained batch.
const flushDBTimeout = 30 * time.Second

// CapturedEvent is one user action recorded by the capture middleware.
// Schema routes the event to the right tenant's tables at flush time.
type CapturedEvent struct {
	Schema      string
	UserID      uint
	UserRole    string
	EventName   string
	Category    Category
	Properties  map[string]any
	SearchQuery string
	CapturedAt  time.Time
}

type usageEntry struct {
	schema string
	inc    report.UsageIncrement
}

type searchEntry struct {
	schema string
	rep    *report.SearchReport
}

// Pipeline is the three-stage usage tracking flow. Captured events buffer in
// the event queue; a flush persists the raw rows and folds the batch into
// usage increments and search details, which buffer in their own queues
// before the aggregate writes. Failures at any stage are logged and the
// affected batch dropped; tracking never fails a user request.
type Pipeline struct {
	events *BufferedQueue[CapturedEvent]
	usage  *BufferedQueue[usageEntry]
	search *BufferedQueue[searchEntry]

	eventLogs     report.EventLogRepository
	usageReports  report.UsageReportRepository
	searchReports report.SearchReportRepository
	logger        logger.Interface
}

func NewPipeline(
	cfg *config.PipelineConfig,
	eventLogs report.EventLogRepository,
	usageReports report.UsageReportRepository,
	searchReports report.SearchReportRepository,
	log logger.Interface,
) *Pipeline {
	p := &Pipeline{
		eventLogs:     eventLogs,
		usageReports:  usageReports,
		searchReports: searchReports,
		logger:        log.Named("eventlog"),
	}
	timeout := time.Duration(cfg.FlushTimeoutMsec) * time.Millisecond
	p.events = NewBufferedQueue(cfg.EventQueueSize, timeout, p.flushEvents)
	p.usage = NewBufferedQueue(cfg.ReportQueueSize, timeout, p.flushUsage)
	p.search = NewBufferedQueue(cfg.ReportQueueSize, timeout, p.flushSearch)
	return p
}

// Capture enqueues one event. It never blocks on the database and never
// returns an error; tracking is strictly best-effort.
func (p *Pipeline) Capture(ev CapturedEvent) {
	if ev.CapturedAt.IsZero() {
		ev.CapturedAt = biztime.NowUTC()
	}
	p.events.Add(ev)
}

// Close drains all three queues in order. Call during graceful shutdown.
func (p *Pipeline) Close() {
	p.events.Close()
	p.usage.Close()
	p.search.Close()
}

// flushEvents persists a drained batch and fans out the per-tenant
// aggregation work. Each tenant's rows are written separately so one broken
// schema cannot poison the rest of the batch.
func (p *Pipeline) flushEvents(items []CapturedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), flushDBTimeout)
	defer cancel()

	byTenant := make(map[string][]CapturedEvent)
	for _, ev := range items {
		byTenant[ev.Schema] = append(byTenant[ev.Schema], ev)
	}

	for schema, events := range byTenant {
		rows := make([]*report.EventLog, 0, len(events))
		for _, ev := range events {
			rows = append(rows, &report.EventLog{
				UserID:     ev.UserID,
				UserRole:   ev.UserRole,
				EventName:  ev.EventName,
				Properties: ev.Properties,
				CreatedAt:  ev.CapturedAt,
			})
		}
		if _, err := p.eventLogs.InsertBatch(ctx, schema, rows); err != nil {
			p.logger.Errorw("event log insert failed, batch dropped",
				"schema", schema,
				"events", len(rows),
				"error", err,
			)
			continue
		}
		p.foldBatch(schema, events)
	}
}

// foldBatch reduces one tenant's events to usage increments keyed by
// (user, day) and individual search details, and hands both downstream.
func (p *Pipeline) foldBatch(schema string, events []CapturedEvent) {
	type dayKey struct {
		userID uint
		day    time.Time
	}
	increments := make(map[dayKey]*report.UsageIncrement)

	for _, ev := range events {
		day := biztime.ReportDate(ev.CapturedAt)
		key := dayKey{userID: ev.UserID, day: day}
		inc, ok := increments[key]
		if !ok {
			inc = &report.UsageIncrement{UserID: ev.UserID, ReportDate: day}
			increments[key] = inc
		}

		switch ev.Category {
		case CategorySearch:
			inc.Searches++
			p.search.Add(searchEntry{schema: schema, rep: &report.SearchReport{
				UserID:      ev.UserID,
				EventName:   ev.EventName,
				SearchQuery: ev.SearchQuery,
				CreatedAt:   ev.CapturedAt,
			}})
		case CategoryEmailReview:
			inc.EmailsReviewed++
		case CategoryContactExport:
			inc.ContactExports++
		case CategoryAttachmentExport:
			inc.AttachmentExports++
		}
	}

	for _, inc := range increments {
		p.usage.Add(usageEntry{schema: schema, inc: *inc})
	}
}

// flushUsage folds the drained entries once more (the same user/day key can
// arrive from separate event flushes) and applies each increment as an
// atomic upsert-with-add.
func (p *Pipeline) flushUsage(items []usageEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), flushDBTimeout)
	defer cancel()

	type usageKey struct {
		schema string
		userID uint
		day    time.Time
	}
	merged := make(map[usageKey]*report.UsageIncrement)
	order := make([]usageKey, 0, len(items))
	for _, entry := range items {
		key := usageKey{schema: entry.schema, userID: entry.inc.UserID, day: entry.inc.ReportDate}
		if inc, ok := merged[key]; ok {
			inc.Add(entry.inc)
			continue
		}
		inc := entry.inc
		merged[key] = &inc
		order = append(order, key)
	}

	for _, key := range order {
		if err := p.usageReports.IncrementDaily(ctx, key.schema, *merged[key]); err != nil {
			p.logger.Errorw("usage increment failed, increment dropped",
				"schema", key.schema,
				"user_id", key.userID,
				"report_date", biztime.FormatDate(key.day),
				"error", err,
			)
		}
	}
}

func (p *Pipeline) flushSearch(items []searchEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), flushDBTimeout)
	defer cancel()

	byTenant := make(map[string][]*report.SearchReport)
	for _, entry := range items {
		byTenant[entry.schema] = append(byTenant[entry.schema], entry.rep)
	}
	for schema, reports := range byTenant {
		if err := p.searchReports.InsertBatch(ctx, schema, reports); err != nil {
			p.logger.Errorw("search report insert failed, batch dropped",
				"schema", schema,
				"reports", len(reports),
				"error", err,
			)
		}
	}
}
