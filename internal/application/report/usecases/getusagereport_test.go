package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recovvo-inc/recovvo/internal/domain/report"
	apperrors "github.com/recovvo-inc/recovvo/internal/shared/errors"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
)

type mockUsageRepo struct {
	incrementDailyFunc func(ctx context.Context, schema string, inc report.UsageIncrement) error
	listByRangeFunc    func(ctx context.Context, schema string, userIDs []uint, from, to time.Time) ([]*report.UsageReport, error)
}

func (m *mockUsageRepo) IncrementDaily(ctx context.Context, schema string, inc report.UsageIncrement) error {
	return m.incrementDailyFunc(ctx, schema, inc)
}

func (m *mockUsageRepo) ListByRange(ctx context.Context, schema string, userIDs []uint, from, to time.Time) ([]*report.UsageReport, error) {
	return m.listByRangeFunc(ctx, schema, userIDs, from, to)
}

type mockSearchRepo struct {
	insertBatchFunc func(ctx context.Context, schema string, reports []*report.SearchReport) error
	listByRangeFunc func(ctx context.Context, schema string, userIDs []uint, from, to time.Time, offset, limit int) ([]*report.SearchReport, int64, error)
}

func (m *mockSearchRepo) InsertBatch(ctx context.Context, schema string, reports []*report.SearchReport) error {
	return m.insertBatchFunc(ctx, schema, reports)
}

func (m *mockSearchRepo) ListByRange(ctx context.Context, schema string, userIDs []uint, from, to time.Time, offset, limit int) ([]*report.SearchReport, int64, error) {
	return m.listByRangeFunc(ctx, schema, userIDs, from, to, offset, limit)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestGetUsageReport_TotalsAcrossRows(t *testing.T) {
	repo := &mockUsageRepo{
		listByRangeFunc: func(ctx context.Context, schema string, userIDs []uint, from, to time.Time) ([]*report.UsageReport, error) {
			return []*report.UsageReport{
				{UserID: 1, ReportDate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), Searches: 2, EmailsReviewed: 1},
				{UserID: 1, ReportDate: time.Date(2023, 5, 11, 0, 0, 0, 0, time.UTC), Searches: 3},
				{UserID: 2, ReportDate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), Searches: 1, ContactExports: 4},
			}, nil
		},
	}

	uc := NewGetUsageReportUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetUsageReportQuery{
		Schema: "acme_corp_com",
		From:   time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, result.Reports, 3)
	assert.Equal(t, int64(6), result.Totals.Searches)
	assert.Equal(t, int64(1), result.Totals.EmailsReviewed)
	assert.Equal(t, int64(4), result.Totals.ContactExports)
	assert.Equal(t, "2023-05-10", result.Reports[0].ReportDate)
}

func TestGetUsageReport_InvertedRangeRejected(t *testing.T) {
	uc := NewGetUsageReportUseCase(&mockUsageRepo{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetUsageReportQuery{
		Schema: "acme_corp_com",
		From:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetUsageReport_OversizedRangeRejected(t *testing.T) {
	uc := NewGetUsageReportUseCase(&mockUsageRepo{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), GetUsageReportQuery{
		Schema: "acme_corp_com",
		From:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetSearchReport_PassesRangeAndPagination(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &mockSearchRepo{
		listByRangeFunc: func(ctx context.Context, schema string, userIDs []uint, from, to time.Time, offset, limit int) ([]*report.SearchReport, int64, error) {
			gotOffset, gotLimit = offset, limit
			return []*report.SearchReport{{ID: 1, UserID: 1, EventName: "contact_search", SearchQuery: "acme"}}, 1, nil
		},
	}

	uc := NewGetSearchReportUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), GetSearchReportQuery{
		Schema: "acme_corp_com",
		From:   time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 20, gotLimit)
	assert.Len(t, result.Searches, 1)
}
