package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/news"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/services/markdown"
)

type ListNewsUseCase struct {
	newsRepo news.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewListNewsUseCase(newsRepo news.Repository, markdown markdown.Service, logger logger.Interface) *ListNewsUseCase {
	return &ListNewsUseCase{newsRepo: newsRepo, markdown: markdown, logger: logger}
}

func (uc *ListNewsUseCase) Execute(ctx context.Context) ([]*NewsResult, error) {
	posts, err := uc.newsRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list news posts", "error", err)
		return nil, fmt.Errorf("failed to list news posts: %w", err)
	}

	results := make([]*NewsResult, 0, len(posts))
	for _, post := range posts {
		res, err := renderNews(post, uc.markdown)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
