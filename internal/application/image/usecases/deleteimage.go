package usecases

import (
	"context"
	"fmt"
	"path"

	"clubcms/internal/domain/image"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

// DeleteImageUseCase removes the metadata row first, then the files. A row
// pointing at missing files is not tolerated, but stray files after a crash
// are harmless, so disk cleanup is best-effort.
type DeleteImageUseCase struct {
	imageRepo image.Repository
	storage   Storage
	logger    logger.Interface
}

func NewDeleteImageUseCase(imageRepo image.Repository, storage Storage, logger logger.Interface) *DeleteImageUseCase {
	return &DeleteImageUseCase{imageRepo: imageRepo, storage: storage, logger: logger}
}

func (uc *DeleteImageUseCase) Execute(ctx context.Context, id uint) error {
	img, err := uc.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get image", "error", err, "image_id", id)
		return fmt.Errorf("failed to get image: %w", err)
	}

	if err := uc.imageRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete image record", "error", err, "image_id", id)
		return fmt.Errorf("failed to delete image: %w", err)
	}

	if err := uc.storage.RemoveOriginal(img.Filename); err != nil {
		uc.logger.Warnw("failed to remove image file", "error", err, "filename", img.Filename)
	}
	if img.ThumbnailPath != nil {
		thumbName := path.Base(*img.ThumbnailPath)
		if err := uc.storage.RemoveThumbnail(thumbName); err != nil {
			uc.logger.Warnw("failed to remove thumbnail file", "error", err, "filename", thumbName)
		}
	}

	uc.logger.Infow("image deleted", "image_id", id, "filename", img.Filename)
	return nil
}
