package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubcms/internal/application/image/usecases"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/utils"
)

type ImageHandler struct {
	uploadUC      uploadImageUseCase
	uploadBatchUC uploadImagesUseCase
	listUC        listImagesUseCase
	getUC         getImageUseCase
	updateUC      updateImageUseCase
	deleteUC      deleteImageUseCase
	logger        logger.Interface
}

func NewImageHandler(
	uploadUC uploadImageUseCase,
	uploadBatchUC uploadImagesUseCase,
	listUC listImagesUseCase,
	getUC getImageUseCase,
	updateUC updateImageUseCase,
	deleteUC deleteImageUseCase,
	logger logger.Interface,
) *ImageHandler {
	return &ImageHandler{
		uploadUC:      uploadUC,
		uploadBatchUC: uploadBatchUC,
		listUC:        listUC,
		getUC:         getUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		logger:        logger,
	}
}

type UpdateImageRequest struct {
	AltText  string `json:"alt_text"`
	Category string `json:"category"`
}

func (h *ImageHandler) Upload(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewNoFilesError())
		return
	}

	cmd, file, err := h.buildUploadCommand(c, fileHeader, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Close()

	result, err := h.uploadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toImageResponse(result.Image), "Image uploaded successfully")
}

func (h *ImageHandler) UploadMultiple(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewNoFilesError())
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		utils.ErrorResponseWithError(c, errors.NewNoFilesError())
		return
	}
	if len(fileHeaders) > usecases.MaxBatchSize {
		utils.ErrorResponseWithError(c, errors.NewValidationError(
			fmt.Sprintf("At most %d files per upload", usecases.MaxBatchSize)))
		return
	}

	cmd, openFiles, unreadable := h.collectUploadCommands(c, fileHeaders, userID)
	defer func() {
		for _, f := range openFiles {
			f.Close()
		}
	}()

	// every part unreadable: nothing for the pipeline, but the batch
	// contract still reports per-file outcomes
	result := &usecases.UploadImagesResult{Failed: unreadable}
	if len(cmd.Files) > 0 {
		result, err = h.uploadBatchUC.Execute(c.Request.Context(), cmd)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		result.Failed = append(result.Failed, unreadable...)
	}

	uploaded := make([]imageResponse, 0, len(result.Uploaded))
	for _, res := range result.Uploaded {
		uploaded = append(uploaded, toImageResponse(res.Image))
	}

	utils.SuccessResponse(c, http.StatusCreated, "Upload finished", gin.H{
		"uploaded": uploaded,
		"failed":   result.Failed,
	})
}

// collectUploadCommands opens each part, turning unreadable ones into
// per-file failures instead of aborting the batch.
func (h *ImageHandler) collectUploadCommands(c *gin.Context, fileHeaders []*multipart.FileHeader, userID uint) (usecases.UploadImagesCommand, []multipart.File, []usecases.UploadFailure) {
	var (
		cmd       usecases.UploadImagesCommand
		openFiles []multipart.File
		failed    []usecases.UploadFailure
	)
	for _, fh := range fileHeaders {
		fileCmd, file, err := h.buildUploadCommand(c, fh, userID)
		if err != nil {
			failed = append(failed, usecases.UploadFailure{
				OriginalName: fh.Filename,
				Reason:       "Could not read uploaded file",
			})
			continue
		}
		openFiles = append(openFiles, file)
		cmd.Files = append(cmd.Files, fileCmd)
	}
	return cmd, openFiles, failed
}

func (h *ImageHandler) buildUploadCommand(c *gin.Context, fh *multipart.FileHeader, userID uint) (usecases.UploadImageCommand, multipart.File, error) {
	file, err := fh.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err, "filename", fh.Filename)
		return usecases.UploadImageCommand{}, nil, errors.NewBadRequestError("Could not read uploaded file")
	}

	return usecases.UploadImageCommand{
		Reader:           file,
		OriginalName:     fh.Filename,
		DeclaredMimeType: fh.Header.Get("Content-Type"),
		Size:             fh.Size,
		AltText:          c.PostForm("alt_text"),
		Category:         c.PostForm("category"),
		UploadedBy:       userID,
	}, file, nil
}

func (h *ImageHandler) List(c *gin.Context) {
	limit, offset := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListImagesCommand{
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"images":   toImageResponses(result.Images),
		"total":    result.Total,
		"limit":    result.Limit,
		"offset":   result.Offset,
		"has_more": result.HasMore,
	})
}

func (h *ImageHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	img, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toImageResponse(img))
}

func (h *ImageHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	img, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateImageCommand{
		ID:       id,
		AltText:  req.AltText,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Image updated successfully", toImageResponse(img))
}

func (h *ImageHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Image deleted successfully", nil)
}
