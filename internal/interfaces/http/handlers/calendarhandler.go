package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clubcms/internal/application/calendar/usecases"
	"clubcms/internal/domain/calendar"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/utils"
)

type CalendarHandler struct {
	createUC *usecases.CreateEventUseCase
	listUC   *usecases.ListEventsUseCase
	getUC    *usecases.GetEventUseCase
	updateUC *usecases.UpdateEventUseCase
	deleteUC *usecases.DeleteEventUseCase
	logger   logger.Interface
}

func NewCalendarHandler(
	createUC *usecases.CreateEventUseCase,
	listUC *usecases.ListEventsUseCase,
	getUC *usecases.GetEventUseCase,
	updateUC *usecases.UpdateEventUseCase,
	deleteUC *usecases.DeleteEventUseCase,
	logger logger.Interface,
) *CalendarHandler {
	return &CalendarHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
}

type eventResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEventResponse(e *calendar.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (h *CalendarHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Title and date are required"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	event, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEventCommand{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		CreatedBy:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toEventResponse(event), "Event created")
}

func (h *CalendarHandler) List(c *gin.Context) {
	events, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}

	utils.SuccessResponse(c, http.StatusOK, "", out)
}

func (h *CalendarHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	event, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toEventResponse(event))
}

func (h *CalendarHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Title and date are required"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	event, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEventCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event updated", toEventResponse(event))
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event deleted", nil)
}
