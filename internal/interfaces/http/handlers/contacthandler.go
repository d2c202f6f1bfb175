package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcms/internal/application/contact/usecases"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/utils"
)

type ContactHandler struct {
	sendUC *usecases.SendMessageUseCase
	logger logger.Interface
}

func NewContactHandler(sendUC *usecases.SendMessageUseCase, logger logger.Interface) *ContactHandler {
	return &ContactHandler{sendUC: sendUC, logger: logger}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Name, email, subject and message are required"))
		return
	}

	err := h.sendUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message sent successfully", nil)
}
