package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/image"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type GetImageUseCase struct {
	imageRepo image.Repository
	logger    logger.Interface
}

func NewGetImageUseCase(imageRepo image.Repository, logger logger.Interface) *GetImageUseCase {
	return &GetImageUseCase{imageRepo: imageRepo, logger: logger}
}

func (uc *GetImageUseCase) Execute(ctx context.Context, id uint) (*image.Image, error) {
	img, err := uc.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get image", "error", err, "image_id", id)
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return img, nil
}
