package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type UserHandler struct {
	createUC *usecases.CreateUserUseCase
	getUC    *usecases.GetUserUseCase
	listUC   *usecases.ListUsersUseCase
	updateUC *usecases.UpdateUserUseCase
	logger   logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	updateUC *usecases.UpdateUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=80"`
	LastName  string `json:"last_name" validate:"max=80"`
	Role      string `json:"role" binding:"required,oneof=member supervisor admin"`
	Provider  string `json:"provider" binding:"omitempty,oneof=local google outlook"`
	Password  string `json:"password" validate:"omitempty,min=8"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role" binding:"omitempty,oneof=member supervisor admin"`
	IsActive  *bool   `json:"is_active"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user request")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Schema:    middleware.TenantSchema(c),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Provider:  req.Provider,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "user created")
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), middleware.TenantSchema(c), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Schema:     middleware.TenantSchema(c),
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user request")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Schema:    middleware.TenantSchema(c),
		ID:        uint(id),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", result)
}
