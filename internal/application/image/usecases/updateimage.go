package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/image"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type UpdateImageCommand struct {
	ID       uint
	AltText  string
	Category string
}

type UpdateImageUseCase struct {
	imageRepo image.Repository
	logger    logger.Interface
}

func NewUpdateImageUseCase(imageRepo image.Repository, logger logger.Interface) *UpdateImageUseCase {
	return &UpdateImageUseCase{imageRepo: imageRepo, logger: logger}
}

func (uc *UpdateImageUseCase) Execute(ctx context.Context, cmd UpdateImageCommand) (*image.Image, error) {
	if _, err := uc.imageRepo.GetByID(ctx, cmd.ID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get image", "error", err, "image_id", cmd.ID)
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	if err := uc.imageRepo.UpdateMetadata(ctx, cmd.ID, cmd.AltText, cmd.Category); err != nil {
		uc.logger.Errorw("failed to update image metadata", "error", err, "image_id", cmd.ID)
		return nil, fmt.Errorf("failed to update image: %w", err)
	}

	img, err := uc.imageRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to reload image", "error", err, "image_id", cmd.ID)
		return nil, fmt.Errorf("failed to reload image: %w", err)
	}
	return img, nil
}
