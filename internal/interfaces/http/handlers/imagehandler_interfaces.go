package handlers

import (
	"context"

	"clubcms/internal/application/image/usecases"
	"clubcms/internal/domain/image"
)

// Use case interfaces for ImageHandler - enables unit testing with mocks.

type uploadImageUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadImageCommand) (*usecases.UploadImageResult, error)
}

type uploadImagesUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadImagesCommand) (*usecases.UploadImagesResult, error)
}

type listImagesUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListImagesCommand) (*usecases.ListImagesResult, error)
}

type getImageUseCase interface {
	Execute(ctx context.Context, id uint) (*image.Image, error)
}

type updateImageUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateImageCommand) (*image.Image, error)
}

type deleteImageUseCase interface {
	Execute(ctx context.Context, id uint) error
}
