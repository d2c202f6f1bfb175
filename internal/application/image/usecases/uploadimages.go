package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

// MaxBatchSize bounds how many files one batch upload may carry.
const MaxBatchSize = 10

type UploadImagesCommand struct {
	Files []UploadImageCommand
}

// UploadFailure reports one file that did not make it through the pipeline.
type UploadFailure struct {
	OriginalName string `json:"original_name"`
	Reason       string `json:"reason"`
}

type UploadImagesResult struct {
	Uploaded []*UploadImageResult
	Failed   []UploadFailure
}

// UploadImagesUseCase runs the single-file pipeline over a batch. Files are
// independent: one failing does not abort or unwind the others.
type UploadImagesUseCase struct {
	single *UploadImageUseCase
	logger logger.Interface
}

func NewUploadImagesUseCase(single *UploadImageUseCase, logger logger.Interface) *UploadImagesUseCase {
	return &UploadImagesUseCase{single: single, logger: logger}
}

func (uc *UploadImagesUseCase) Execute(ctx context.Context, cmd UploadImagesCommand) (*UploadImagesResult, error) {
	if len(cmd.Files) == 0 {
		return nil, errors.NewNoFilesError()
	}
	if len(cmd.Files) > MaxBatchSize {
		return nil, errors.NewValidationError(fmt.Sprintf("At most %d files per upload", MaxBatchSize))
	}

	result := &UploadImagesResult{}
	for _, file := range cmd.Files {
		res, err := uc.single.Execute(ctx, file)
		if err != nil {
			result.Failed = append(result.Failed, UploadFailure{
				OriginalName: file.OriginalName,
				Reason:       failureReason(err),
			})
			continue
		}
		result.Uploaded = append(result.Uploaded, res)
	}

	uc.logger.Infow("batch upload finished", "uploaded", len(result.Uploaded), "failed", len(result.Failed))
	return result, nil
}

// failureReason surfaces tagged errors verbatim and hides internal ones.
func failureReason(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "Upload failed"
}
