package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/contact/usecases"
	"github.com/recovvo-inc/recovvo/internal/application/visibility"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type ContactHandler struct {
	listContactsUC      *usecases.ListContactsUseCase
	activityUC          *usecases.GetContactActivityUseCase
	exportUC            *usecases.ExportContactsUseCase
	exportAttachmentsUC *usecases.ExportAttachmentsUseCase
	listDomainsUC       *usecases.ListClientDomainsUseCase
	getDomainUC         *usecases.GetClientDomainUseCase
	logger              logger.Interface
}

func NewContactHandler(
	listContactsUC *usecases.ListContactsUseCase,
	activityUC *usecases.GetContactActivityUseCase,
	exportUC *usecases.ExportContactsUseCase,
	exportAttachmentsUC *usecases.ExportAttachmentsUseCase,
	listDomainsUC *usecases.ListClientDomainsUseCase,
	getDomainUC *usecases.GetClientDomainUseCase,
	logger logger.Interface,
) *ContactHandler {
	return &ContactHandler{
		listContactsUC:      listContactsUC,
		activityUC:          activityUC,
		exportUC:            exportUC,
		exportAttachmentsUC: exportAttachmentsUC,
		listDomainsUC:       listDomainsUC,
		getDomainUC:         getDomainUC,
		logger:              logger,
	}
}

// caller builds the visibility caller from the authenticated request.
func caller(c *gin.Context) visibility.Caller {
	return visibility.Caller{
		ID:   middleware.CallerID(c),
		Role: middleware.CallerRole(c),
	}
}

// searchParams parses the four grant-source selectors from the query string.
// An absent parameter leaves that selector unset; "all" and CSV ID lists are
// handled by the selector itself.
func searchParams(c *gin.Context) visibility.SearchUserParams {
	return visibility.SearchUserParams{
		Me:            visibility.ParseSelector(c.Query("me")),
		Subordinates:  visibility.ParseSelector(c.Query("subordinates")),
		Aliases:       visibility.ParseSelector(c.Query("aliases")),
		Collaborators: visibility.ParseSelector(c.Query("collaborators")),
	}
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listContactsUC.Execute(c.Request.Context(), usecases.ListContactsQuery{
		Schema:          middleware.TenantSchema(c),
		Caller:          caller(c),
		Params:          searchParams(c),
		Search:          c.Query("search"),
		ClientDomainIDs: visibility.ParseSelector(c.Query("clientDomainIds")),
		Pagination:      pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Contacts, result.Total, pagination.Page, pagination.PageSize)
}

func (h *ContactHandler) GetContactActivity(c *gin.Context) {
	contactID, err := strconv.ParseUint(c.Param("contactId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid contact id")
		return
	}

	var window visibility.Window
	if raw := c.Query("emailsFrom"); raw != "" {
		t, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid emailsFrom date")
			return
		}
		window.From = &t
	}
	if raw := c.Query("emailsUpto"); raw != "" {
		t, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid emailsUpto date")
			return
		}
		end := biztime.EndOfDayUTC(t)
		window.To = &end
	}

	pagination := utils.ParsePagination(c)
	result, err := h.activityUC.Execute(c.Request.Context(), usecases.GetContactActivityQuery{
		Schema:     middleware.TenantSchema(c),
		Caller:     caller(c),
		ContactID:  uint(contactID),
		Window:     window,
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"messages":    result.Messages,
		"total":       result.Total,
		"access_type": result.AccessType,
		"page":        pagination.Page,
		"page_size":   pagination.PageSize,
	})
}

// ExportContacts streams the caller's visible contacts as a CSV attachment.
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	result, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportContactsQuery{
		Schema:          middleware.TenantSchema(c),
		Caller:          caller(c),
		Params:          searchParams(c),
		Search:          c.Query("search"),
		ClientDomainIDs: visibility.ParseSelector(c.Query("clientDomainIds")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", result.CSV)
}

// ExportContactAttachments exports attachment metadata for one contact's
// visible messages.
func (h *ContactHandler) ExportContactAttachments(c *gin.Context) {
	contactID, err := strconv.ParseUint(c.Param("contactId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid contact id")
		return
	}

	result, err := h.exportAttachmentsUC.Execute(c.Request.Context(), usecases.ExportAttachmentsQuery{
		Schema:    middleware.TenantSchema(c),
		Caller:    caller(c),
		ContactID: uint(contactID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", result.CSV)
}

func (h *ContactHandler) ListClientDomains(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listDomainsUC.Execute(c.Request.Context(), usecases.ListClientDomainsQuery{
		Schema:     middleware.TenantSchema(c),
		Caller:     caller(c),
		Params:     searchParams(c),
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Domains, result.Total, pagination.Page, pagination.PageSize)
}

func (h *ContactHandler) GetClientDomain(c *gin.Context) {
	domainID, err := strconv.ParseUint(c.Param("domainId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client domain id")
		return
	}

	result, err := h.getDomainUC.Execute(c.Request.Context(), middleware.TenantSchema(c), caller(c), uint(domainID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
