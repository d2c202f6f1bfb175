package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/image"
	"clubcms/internal/shared/logger"
)

type ListImagesCommand struct {
	Category string
	Limit    int
	Offset   int
}

type ListImagesResult struct {
	Images  []*image.Image
	Total   int64
	Limit   int
	Offset  int
	HasMore bool
}

type ListImagesUseCase struct {
	imageRepo image.Repository
	logger    logger.Interface
}

func NewListImagesUseCase(imageRepo image.Repository, logger logger.Interface) *ListImagesUseCase {
	return &ListImagesUseCase{imageRepo: imageRepo, logger: logger}
}

func (uc *ListImagesUseCase) Execute(ctx context.Context, cmd ListImagesCommand) (*ListImagesResult, error) {
	images, total, err := uc.imageRepo.List(ctx, image.ListFilter{
		Category: cmd.Category,
		Limit:    cmd.Limit,
		Offset:   cmd.Offset,
	})
	if err != nil {
		uc.logger.Errorw("failed to list images", "error", err)
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	return &ListImagesResult{
		Images:  images,
		Total:   total,
		Limit:   cmd.Limit,
		Offset:  cmd.Offset,
		HasMore: int64(cmd.Offset+cmd.Limit) < total,
	}, nil
}
