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

// SearchReportRepository stores individual search events inside a tenant
// schema.
type SearchReportRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSearchReportRepository(db *gorm.DB, logger logger.Interface) report.SearchReportRepository {
	return &SearchReportRepository{db: db, logger: logger}
}

func (r *SearchReportRepository) table(schema string) string {
	return schema + ".search_reports"
}

func (r *SearchReportRepository) InsertBatch(ctx context.Context, schema string, reports []*report.SearchReport) error {
	if len(reports) == 0 {
		return nil
	}

	ms := make([]*models.SearchReportModel, 0, len(reports))
	for _, s := range reports {
		ms = append(ms, mappers.SearchReportToModel(s))
	}

	if err := r.db.WithContext(ctx).Table(r.table(schema)).Create(&ms).Error; err != nil {
		r.logger.Errorw("failed to insert search report batch", "schema", schema, "count", len(ms), "error", err)
		return fmt.Errorf("failed to insert search reports: %w", err)
	}
	return nil
}

func (r *SearchReportRepository) ListByRange(ctx context.Context, schema string, userIDs []uint, from, to time.Time, offset, limit int) ([]*report.SearchReport, int64, error) {
	query := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("created_at >= ? AND created_at <= ?", from, to)
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search reports: %w", err)
	}

	var ms []*models.SearchReportModel
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list search reports: %w", err)
	}
	return mappers.SearchReportsToEntities(ms), total, nil
}
