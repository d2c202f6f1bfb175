package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clubcms/internal/application/news/usecases"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/utils"
)

type NewsHandler struct {
	createUC *usecases.CreateNewsUseCase
	listUC   *usecases.ListNewsUseCase
	getUC    *usecases.GetNewsUseCase
	updateUC *usecases.UpdateNewsUseCase
	deleteUC *usecases.DeleteNewsUseCase
	logger   logger.Interface
}

func NewNewsHandler(
	createUC *usecases.CreateNewsUseCase,
	listUC *usecases.ListNewsUseCase,
	getUC *usecases.GetNewsUseCase,
	updateUC *usecases.UpdateNewsUseCase,
	deleteUC *usecases.DeleteNewsUseCase,
	logger logger.Interface,
) *NewsHandler {
	return &NewsHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type NewsRequest struct {
	Title   string  `json:"title" binding:"required"`
	Content string  `json:"content" binding:"required"`
	Date    string  `json:"date" binding:"required"`
	Image   *string `json:"image"`
}

type newsResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	Date        string    `json:"date"`
	Image       *string   `json:"image,omitempty"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toNewsResponse(res *usecases.NewsResult) newsResponse {
	return newsResponse{
		ID:          res.News.ID,
		Title:       res.News.Title,
		Content:     res.News.Content,
		ContentHTML: res.ContentHTML,
		Date:        res.News.Date.Format("2006-01-02"),
		Image:       res.News.Image,
		CreatedBy:   res.News.CreatedBy,
		CreatedAt:   res.News.CreatedAt,
		UpdatedAt:   res.News.UpdatedAt,
	}
}

// parseDate accepts the site's plain date format and full timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("Date must be YYYY-MM-DD")
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Title, content and date are required"))
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

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateNewsCommand{
		Title:     req.Title,
		Content:   req.Content,
		Date:      date,
		Image:     req.Image,
		CreatedBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toNewsResponse(result), "News post created")
}

func (h *NewsHandler) List(c *gin.Context) {
	results, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	posts := make([]newsResponse, 0, len(results))
	for _, res := range results {
		posts = append(posts, toNewsResponse(res))
	}

	utils.SuccessResponse(c, http.StatusOK, "", posts)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "news")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toNewsResponse(result))
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "news")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Title, content and date are required"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateNewsCommand{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Date:    date,
		Image:   req.Image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "News post updated", toNewsResponse(result))
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "news")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "News post deleted", nil)
}
