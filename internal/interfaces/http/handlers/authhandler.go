package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recovvo-inc/recovvo/internal/application/user/dto"
	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
	"github.com/recovvo-inc/recovvo/internal/interfaces/http/middleware"
	"github.com/recovvo-inc/recovvo/internal/shared/constants"
	"github.com/recovvo-inc/recovvo/internal/shared/logger"
	"github.com/recovvo-inc/recovvo/internal/shared/utils"
)

type AuthHandler struct {
	loginUC    *usecases.LoginWithPasswordUseCase
	refreshUC  *usecases.RefreshTokenUseCase
	logoutUC   *usecases.LogoutUseCase
	initiateUC *usecases.InitiateOAuthLoginUseCase
	callbackUC *usecases.HandleOAuthCallbackUseCase
	logger     logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginWithPasswordUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	logoutUC *usecases.LogoutUseCase,
	initiateUC *usecases.InitiateOAuthLoginUseCase,
	callbackUC *usecases.HandleOAuthCallbackUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		logoutUC:   logoutUC,
		initiateUC: initiateUC,
		callbackUC: callbackUC,
		logger:     logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type authResponse struct {
	User         *dto.UserDTO `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

func toAuthResponse(auth *dto.AuthResultDTO) authResponse {
	return authResponse{
		User:         auth.User,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		ExpiresIn:    auth.ExpiresIn,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid login request")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Schema:    middleware.TenantSchema(c),
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", toAuthResponse(result))
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid refresh request")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		Schema:       middleware.TenantSchema(c),
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", toAuthResponse(result))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{
		Schema:    middleware.TenantSchema(c),
		SessionID: c.GetString(constants.ContextKeySessionID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// InitiateOAuthLogin starts the provider code flow and returns the provider
// authorization URL for the client to redirect to.
func (h *AuthHandler) InitiateOAuthLogin(c *gin.Context) {
	result, err := h.initiateUC.Execute(c.Request.Context(), usecases.InitiateOAuthLoginCommand{
		Schema:   middleware.TenantSchema(c),
		Provider: c.Param("provider"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"auth_url": result.AuthURL,
		"state":    result.State,
	})
}

// HandleOAuthCallback completes the provider code flow. The state token
// carries the tenant, so this route is not tenant-scoped.
func (h *AuthHandler) HandleOAuthCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing state or code parameter")
		return
	}

	result, err := h.callbackUC.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		State:     state,
		Code:      code,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", toAuthResponse(result.Auth))
}
