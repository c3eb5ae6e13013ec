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
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type GetSearchReportQuery struct {
	Schema     string
	UserIDs    []uint
	From       time.Time
	To         time.Time
	Pagination utils.Pagination
}

type GetSearchReportResult struct {
	Searches []*dto.SearchReportDTO
	Total    int64
}

type GetSearchReportUseCase struct {
	searchRepo report.SearchReportRepository
	logger     logger.Interface
}

func NewGetSearchReportUseCase(searchRepo report.SearchReportRepository, logger logger.Interface) *GetSearchReportUseCase {
	return &GetSearchReportUseCase{searchRepo: searchRepo, logger: logger}
}

func (uc *GetSearchReportUseCase) Execute(ctx context.Context, query GetSearchReportQuery) (*GetSearchReportResult, error) {
	from := biztime.StartOfDayUTC(query.From)
	to := biztime.EndOfDayUTC(query.To)
	if to.Before(from) {
		return nil, errors.NewValidationError("report end date precedes start date")
	}

	p := utils.ValidatePagination(query.Pagination.Page, query.Pagination.PageSize)
	rows, total, err := uc.searchRepo.ListByRange(ctx, query.Schema, query.UserIDs, from, to, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to load search reports", "error", err, "schema", query.Schema)
		return nil, fmt.Errorf("failed to load search reports: %w", err)
	}

	return &GetSearchReportResult{Searches: dto.ToSearchReportDTOs(rows), Total: total}, nil
}
