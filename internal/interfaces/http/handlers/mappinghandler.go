package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	contactusecases "github.com/recovvo-inc/recovvo/internal/application/contact/usecases"
	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type MappingHandler struct {
	createSupervisorUC *usecases.CreateSupervisorMappingUseCase
	deleteSupervisorUC *usecases.DeleteSupervisorMappingUseCase
	createAliasUC      *usecases.CreateAliasMappingUseCase
	updateAliasUC      *usecases.UpdateAliasWindowUseCase
	createCollabUC     *usecases.CreateCollaboratorMappingUseCase
	createDomainUC     *contactusecases.CreateDomainMappingUseCase
	deleteDomainUC     *contactusecases.DeleteDomainMappingUseCase
	logger             logger.Interface
}

func NewMappingHandler(
	createSupervisorUC *usecases.CreateSupervisorMappingUseCase,
	deleteSupervisorUC *usecases.DeleteSupervisorMappingUseCase,
	createAliasUC *usecases.CreateAliasMappingUseCase,
	updateAliasUC *usecases.UpdateAliasWindowUseCase,
	createCollabUC *usecases.CreateCollaboratorMappingUseCase,
	createDomainUC *contactusecases.CreateDomainMappingUseCase,
	deleteDomainUC *contactusecases.DeleteDomainMappingUseCase,
	logger logger.Interface,
) *MappingHandler {
	return &MappingHandler{
		createSupervisorUC: createSupervisorUC,
		deleteSupervisorUC: deleteSupervisorUC,
		createAliasUC:      createAliasUC,
		updateAliasUC:      updateAliasUC,
		createCollabUC:     createCollabUC,
		createDomainUC:     createDomainUC,
		deleteDomainUC:     deleteDomainUC,
		logger:             logger,
	}
}

type CreateSupervisorMappingRequest struct {
	SupervisorID uint `json:"supervisor_id" binding:"required"`
	UserID       uint `json:"user_id" binding:"required"`
}

type AliasWindowRequest struct {
	AliasStartDate                 *string `json:"alias_start_date"`
	AliasEndDate                   *string `json:"alias_end_date"`
	HistoricalEmailAccessStartDate *string `json:"historical_email_access_start_date"`
	HistoricalEmailAccessEndDate   *string `json:"historical_email_access_end_date"`
}

type CreateAliasMappingRequest struct {
	UserID      uint `json:"user_id" binding:"required"`
	AliasUserID uint `json:"alias_user_id" binding:"required"`
	AliasWindowRequest
}

type CreateCollaboratorMappingRequest struct {
	UserID         uint    `json:"user_id" binding:"required"`
	CollaboratorID uint    `json:"collaborator_id" binding:"required"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
}

// parseDatePtr parses an optional "2006-01-02" date string.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *MappingHandler) CreateSupervisorMapping(c *gin.Context) {
	var req CreateSupervisorMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping request")
		return
	}

	err := h.createSupervisorUC.Execute(c.Request.Context(), usecases.CreateSupervisorMappingCommand{
		Schema:       middleware.TenantSchema(c),
		SupervisorID: req.SupervisorID,
		UserID:       req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "supervisor mapping created")
}

func (h *MappingHandler) DeleteSupervisorMapping(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("mappingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping id")
		return
	}

	if err := h.deleteSupervisorUC.Execute(c.Request.Context(), middleware.TenantSchema(c), uint(id)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *MappingHandler) CreateAliasMapping(c *gin.Context) {
	var req CreateAliasMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping request")
		return
	}

	cmd := usecases.CreateAliasMappingCommand{
		Schema:      middleware.TenantSchema(c),
		ActorID:     middleware.CallerID(c),
		UserID:      req.UserID,
		AliasUserID: req.AliasUserID,
	}
	var err error
	if cmd.AliasStartDate, err = parseDatePtr(req.AliasStartDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid alias_start_date")
		return
	}
	if cmd.AliasEndDate, err = parseDatePtr(req.AliasEndDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid alias_end_date")
		return
	}
	if cmd.HistoricalEmailAccessStartDate, err = parseDatePtr(req.HistoricalEmailAccessStartDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid historical_email_access_start_date")
		return
	}
	if cmd.HistoricalEmailAccessEndDate, err = parseDatePtr(req.HistoricalEmailAccessEndDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid historical_email_access_end_date")
		return
	}

	result, err := h.createAliasUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "alias mapping created")
}

func (h *MappingHandler) UpdateAliasWindow(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("mappingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping id")
		return
	}

	var req AliasWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping request")
		return
	}

	cmd := usecases.UpdateAliasWindowCommand{
		Schema:    middleware.TenantSchema(c),
		ActorID:   middleware.CallerID(c),
		MappingID: uint(id),
	}
	if cmd.AliasStartDate, err = parseDatePtr(req.AliasStartDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid alias_start_date")
		return
	}
	if cmd.AliasEndDate, err = parseDatePtr(req.AliasEndDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid alias_end_date")
		return
	}
	if cmd.HistoricalEmailAccessStartDate, err = parseDatePtr(req.HistoricalEmailAccessStartDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid historical_email_access_start_date")
		return
	}
	if cmd.HistoricalEmailAccessEndDate, err = parseDatePtr(req.HistoricalEmailAccessEndDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid historical_email_access_end_date")
		return
	}

	result, err := h.updateAliasUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "alias window updated", result)
}

func (h *MappingHandler) CreateCollaboratorMapping(c *gin.Context) {
	var req CreateCollaboratorMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping request")
		return
	}

	cmd := usecases.CreateCollaboratorMappingCommand{
		Schema:         middleware.TenantSchema(c),
		UserID:         req.UserID,
		CollaboratorID: req.CollaboratorID,
	}
	var err error
	if cmd.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid start_date")
		return
	}
	if cmd.EndDate, err = parseDatePtr(req.EndDate); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid end_date")
		return
	}

	if err := h.createCollabUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "collaborator mapping created")
}

type CreateDomainMappingRequest struct {
	ClientDomainID uint `json:"client_domain_id" binding:"required"`
	ProviderUserID uint `json:"provider_user_id" binding:"required"`
}

func (h *MappingHandler) CreateDomainMapping(c *gin.Context) {
	var req CreateDomainMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping request")
		return
	}

	m, err := h.createDomainUC.Execute(c.Request.Context(), contactusecases.CreateDomainMappingCommand{
		Schema:         middleware.TenantSchema(c),
		ClientDomainID: req.ClientDomainID,
		ProviderUserID: req.ProviderUserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": m.ID}, "domain mapping created")
}

func (h *MappingHandler) DeleteDomainMapping(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("mappingId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid mapping id")
		return
	}

	if err := h.deleteDomainUC.Execute(c.Request.Context(), middleware.TenantSchema(c), uint(id)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
