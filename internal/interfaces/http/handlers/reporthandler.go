package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/report/dto"
	"github.com/recovvo-inc/recovvo/internal/application/report/usecases"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type ReportHandler struct {
	usageUC  *usecases.GetUsageReportUseCase
	searchUC *usecases.GetSearchReportUseCase
	logger   logger.Interface
}

func NewReportHandler(
	usageUC *usecases.GetUsageReportUseCase,
	searchUC *usecases.GetSearchReportUseCase,
	logger logger.Interface,
) *ReportHandler {
	return &ReportHandler{usageUC: usageUC, searchUC: searchUC, logger: logger}
}

// parseUserIDs parses the optional comma-separated userIds filter.
func parseUserIDs(raw string) []uint {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32); err == nil {
			ids = append(ids, uint(n))
		}
	}
	return ids
}

func (h *ReportHandler) reportRange(c *gin.Context) (from, to string, ok bool) {
	from = c.Query("from")
	to = c.Query("to")
	if from == "" || to == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "from and to dates are required")
		return "", "", false
	}
	return from, to, true
}

func (h *ReportHandler) GetUsageReport(c *gin.Context) {
	fromRaw, toRaw, ok := h.reportRange(c)
	if !ok {
		return
	}
	from, err := biztime.ParseDate(fromRaw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := biztime.ParseDate(toRaw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid to date")
		return
	}

	result, err := h.usageUC.Execute(c.Request.Context(), usecases.GetUsageReportQuery{
		Schema:  middleware.TenantSchema(c),
		UserIDs: parseUserIDs(c.Query("userIds")),
		From:    from,
		To:      to,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		h.writeUsageCSV(c, result.Reports)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"reports": result.Reports,
		"totals":  result.Totals,
	})
}

var usageReportHeader = []string{"user_id", "report_date", "searches", "emails_reviewed", "contact_exports", "attachment_exports"}

func (h *ReportHandler) writeUsageCSV(c *gin.Context, reports []*dto.UsageReportDTO) {
	filename := fmt.Sprintf("usage-report-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write(usageReportHeader)
	for _, r := range reports {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.UserID), 10),
			r.ReportDate,
			strconv.FormatInt(r.Searches, 10),
			strconv.FormatInt(r.EmailsReviewed, 10),
			strconv.FormatInt(r.ContactExports, 10),
			strconv.FormatInt(r.AttachmentExports, 10),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Errorw("failed to stream usage report csv", "error", err)
	}
}

func (h *ReportHandler) GetSearchReport(c *gin.Context) {
	fromRaw, toRaw, ok := h.reportRange(c)
	if !ok {
		return
	}
	from, err := biztime.ParseDate(fromRaw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := biztime.ParseDate(toRaw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid to date")
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.searchUC.Execute(c.Request.Context(), usecases.GetSearchReportQuery{
		Schema:     middleware.TenantSchema(c),
		UserIDs:    parseUserIDs(c.Query("userIds")),
		From:       from,
		To:         to,
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		h.writeSearchCSV(c, result.Searches)
		return
	}

	utils.ListSuccessResponse(c, result.Searches, result.Total, pagination.Page, pagination.PageSize)
}

var searchReportHeader = []string{"id", "user_id", "event_name", "search_query", "created_at"}

func (h *ReportHandler) writeSearchCSV(c *gin.Context, searches []*dto.SearchReportDTO) {
	filename := fmt.Sprintf("search-report-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write(searchReportHeader)
	for _, r := range searches {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.UserID), 10),
			r.EventName,
			r.SearchQuery,
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Errorw("failed to stream search report csv", "error", err)
	}
}
