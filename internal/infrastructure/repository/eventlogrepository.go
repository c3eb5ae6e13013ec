package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/report"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// EventLogRepository appends raw event rows inside a tenant schema.
type EventLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEventLogRepository(db *gorm.DB, logger logger.Interface) report.EventLogRepository {
	return &EventLogRepository{db: db, logger: logger}
}

func (r *EventLogRepository) table(schema string) string {
	return schema + ".event_logs"
}

func (r *EventLogRepository) InsertBatch(ctx context.Context, schema string, events []*report.EventLog) ([]*report.EventLog, error) {
	if len(events) == 0 {
		return nil, nil
	}

	ms := make([]*models.EventLogModel, 0, len(events))
	for _, e := range events {
		m, err := mappers.EventLogToModel(e)
		if err != nil {
			return nil, fmt.Errorf("failed to map event log: %w", err)
		}
		ms = append(ms, m)
	}

	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(&ms).Error; err != nil {
		r.logger.Errorw("failed to insert event log batch", "schema", schema, "count", len(ms), "error", err)
		return nil, fmt.Errorf("failed to insert event logs: %w", err)
	}

	out := make([]*report.EventLog, 0, len(ms))
	for _, m := range ms {
		e, err := mappers.EventLogToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *EventLogRepository) List(ctx context.Context, schema string, userID uint, from, to time.Time, offset, limit int) ([]*report.EventLog, int64, error) {
	query := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("created_at >= ? AND created_at <= ?", from, to)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count event logs: %w", err)
	}

	var ms []*models.EventLogModel
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list event logs: %w", err)
	}

	out := make([]*report.EventLog, 0, len(ms))
	for _, m := range ms {
		e, err := mappers.EventLogToEntity(m)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, nil
}
