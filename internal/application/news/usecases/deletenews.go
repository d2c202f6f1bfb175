package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/news"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type DeleteNewsUseCase struct {
	newsRepo news.Repository
	logger   logger.Interface
}

func NewDeleteNewsUseCase(newsRepo news.Repository, logger logger.Interface) *DeleteNewsUseCase {
	return &DeleteNewsUseCase{newsRepo: newsRepo, logger: logger}
}

func (uc *DeleteNewsUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := uc.newsRepo.GetByID(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get news post", "error", err, "news_id", id)
		return fmt.Errorf("failed to get news post: %w", err)
	}

	if err := uc.newsRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete news post", "error", err, "news_id", id)
		return fmt.Errorf("failed to delete news post: %w", err)
	}

	uc.logger.Infow("news post deleted", "news_id", id)
	return nil
}
