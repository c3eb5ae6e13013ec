package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/tenant/usecases"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type TenantHandler struct {
	createUC         *usecases.CreateTenantUseCase
	getUC            *usecases.GetTenantUseCase
	listUC           *usecases.ListTenantsUseCase
	updateUC         *usecases.UpdateTenantUseCase
	getSettingsUC    *usecases.GetOrgSettingsUseCase
	updateSettingsUC *usecases.UpdateOrgSettingsUseCase
	logger           logger.Interface
}

func NewTenantHandler(
	createUC *usecases.CreateTenantUseCase,
	getUC *usecases.GetTenantUseCase,
	listUC *usecases.ListTenantsUseCase,
	updateUC *usecases.UpdateTenantUseCase,
	getSettingsUC *usecases.GetOrgSettingsUseCase,
	updateSettingsUC *usecases.UpdateOrgSettingsUseCase,
	logger logger.Interface,
) *TenantHandler {
	return &TenantHandler{
		createUC:         createUC,
		getUC:            getUC,
		listUC:           listUC,
		updateUC:         updateUC,
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

type CreateTenantRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,min=2,max=120"`
	AdminEmail string `json:"admin_email" binding:"required,email" validate:"required,email"`
}

type UpdateTenantRequest struct {
	Name       *string `json:"name"`
	Deactivate bool    `json:"deactivate"`
}

type UpdateOrgSettingsRequest struct {
	EmailAccessStartDate *string `json:"email_access_start_date"`
	EmailAccessEndDate   *string `json:"email_access_end_date"`
	CompleteOnboarding   bool    `json:"complete_onboarding"`
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid tenant request")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTenantCommand{
		Name:       req.Name,
		AdminEmail: req.AdminEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "organization created")
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid tenant id")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTenantsQuery{
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tenants, result.Total, pagination.Page, pagination.PageSize)
}

func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid tenant id")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid tenant request")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTenantCommand{
		ID:         uint(id),
		Name:       req.Name,
		Deactivate: req.Deactivate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "organization updated", result)
}

func (h *TenantHandler) GetOrgSettings(c *gin.Context) {
	result, err := h.getSettingsUC.Execute(c.Request.Context(), middleware.TenantSchema(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TenantHandler) UpdateOrgSettings(c *gin.Context) {
	var req UpdateOrgSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid settings request")
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), usecases.UpdateOrgSettingsCommand{
		Schema:               middleware.TenantSchema(c),
		EmailAccessStartDate: req.EmailAccessStartDate,
		EmailAccessEndDate:   req.EmailAccessEndDate,
		CompleteOnboarding:   req.CompleteOnboarding,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "settings updated", result)
}
