package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/news"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/services/markdown"
)

type GetNewsUseCase struct {
	newsRepo news.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetNewsUseCase(newsRepo news.Repository, markdown markdown.Service, logger logger.Interface) *GetNewsUseCase {
	return &GetNewsUseCase{newsRepo: newsRepo, markdown: markdown, logger: logger}
}

func (uc *GetNewsUseCase) Execute(ctx context.Context, id uint) (*NewsResult, error) {
	post, err := uc.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get news post", "error", err, "news_id", id)
		return nil, fmt.Errorf("failed to get news post: %w", err)
	}
	return renderNews(post, uc.markdown)
}
