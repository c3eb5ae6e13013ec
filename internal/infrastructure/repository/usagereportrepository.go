package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/recovvo-inc/recovvo/internal/domain/report"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/mappers"
	"github.com/recovvo-inc/recovvo/internal/infrastructure/persistence/models"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// UsageReportRepository maintains the per-(user, day) aggregate rows inside a
// tenant schema.
type UsageReportRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUsageReportRepository(db *gorm.DB, logger logger.Interface) report.UsageReportRepository {
	return &UsageReportRepository{db: db, logger: logger}
}

func (r *UsageReportRepository) table(schema string) string {
	return schema + ".usage_reports"
}

// IncrementDaily relies on the UNIQUE (user_id, report_date) constraint so
// concurrent flushes for the same key both land additively.
func (r *UsageReportRepository) IncrementDaily(ctx context.Context, schema string, inc report.UsageIncrement) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s AS ur (user_id, report_date, searches, emails_reviewed, contact_exports, attachment_exports, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, report_date) DO UPDATE SET
			searches = ur.searches + EXCLUDED.searches,
			emails_reviewed = ur.emails_reviewed + EXCLUDED.emails_reviewed,
			contact_exports = ur.contact_exports + EXCLUDED.contact_exports,
			attachment_exports = ur.attachment_exports + EXCLUDED.attachment_exports,
			updated_at = EXCLUDED.updated_at`,
		r.table(schema))

	err := r.db.WithContext(ctx).Exec(sql,
		inc.UserID,
		inc.ReportDate,
		inc.Searches,
		inc.EmailsReviewed,
		inc.ContactExports,
		inc.AttachmentExports,
		biztime.NowUTC(),
	).Error
	if err != nil {
		r.logger.Errorw("failed to increment usage report",
			"schema", schema, "user_id", inc.UserID, "report_date", inc.ReportDate, "error", err)
		return fmt.Errorf("failed to increment usage report: %w", err)
	}
	return nil
}

func (r *UsageReportRepository) ListByRange(ctx context.Context, schema string, userIDs []uint, from, to time.Time) ([]*report.UsageReport, error) {
	query := r.db.WithContext(ctx).Table(r.table(schema)).
		Where("report_date >= ? AND report_date <= ?", from, to)
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}

	var ms []*models.UsageReportModel
	if err := query.Order("report_date ASC, user_id ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list usage reports: %w", err)
	}
	return mappers.UsageReportsToEntities(ms), nil
}
