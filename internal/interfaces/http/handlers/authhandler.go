package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcms/internal/application/auth/usecases"
	"clubcms/internal/shared/constants"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/utils"
)

type AuthHandler struct {
	loginUC          loginUseCase
	logoutUC         logoutUseCase
	changePasswordUC changePasswordUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	changePasswordUC changePasswordUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		logoutUC:         logoutUC,
		changePasswordUC: changePasswordUC,
		logger:           logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Username and password are required"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if authErr := errors.GetAuthError(err); authErr != nil && authErr.SecurityEvent {
			h.logger.Warnw("login rejected", "username", req.Username, "ip", c.ClientIP(), "reason", authErr.Type)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(constants.ContextKeyToken)

	if err := h.logoutUC.Execute(c.Request.Context(), token); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Verify reports the identity behind a token. The auth middleware has already
// checked the signature and the session ledger by the time this runs.
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user": gin.H{
			"id":       userID,
			"username": c.GetString(constants.ContextKeyUsername),
			"role":     c.GetString(constants.ContextKeyUserRole),
		},
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Current and new password are required"))
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
