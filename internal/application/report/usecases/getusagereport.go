package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/recovvo-inc/recovvo/internal/application/report/dto"
	"github.com/recovvo-inc/recovvo/internal/domain/report"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

// maxReportRangeDays caps one usage report query.
const maxReportRangeDays = 366

type GetUsageReportQuery struct {
	Schema  string
	UserIDs []uint
	From    time.Time
	To      time.Time
}

type GetUsageReportResult struct {
	Reports []*dto.UsageReportDTO
	Totals  dto.UsageReportDTO
}

type GetUsageReportUseCase struct {
	usageRepo report.UsageReportRepository
	logger    logger.Interface
}

func NewGetUsageReportUseCase(usageRepo report.UsageReportRepository, logger logger.Interface) *GetUsageReportUseCase {
	return &GetUsageReportUseCase{usageRepo: usageRepo, logger: logger}
}

// Execute returns the per-(user, day) rows in the range plus a totals line.
func (uc *GetUsageReportUseCase) Execute(ctx context.Context, query GetUsageReportQuery) (*GetUsageReportResult, error) {
	from := biztime.StartOfDayUTC(query.From)
	to := biztime.EndOfDayUTC(query.To)
	if to.Before(from) {
		return nil, errors.NewValidationError("report end date precedes start date")
	}
	if to.Sub(from) > maxReportRangeDays*24*time.Hour {
		return nil, errors.NewValidationError(fmt.Sprintf("report range exceeds %d days", maxReportRangeDays))
	}

	rows, err := uc.usageRepo.ListByRange(ctx, query.Schema, query.UserIDs, from, to)
	if err != nil {
		uc.logger.Errorw("failed to load usage reports", "error", err, "schema", query.Schema)
		return nil, fmt.Errorf("failed to load usage reports: %w", err)
	}

	result := &GetUsageReportResult{Reports: dto.ToUsageReportDTOs(rows)}
	for _, r := range rows {
		result.Totals.Searches += r.Searches
		result.Totals.EmailsReviewed += r.EmailsReviewed
		result.Totals.ContactExports += r.ContactExports
		result.Totals.AttachmentExports += r.AttachmentExports
	}
	return result, nil
}
