package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubcms/internal/domain/news"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/services/markdown"
)

type UpdateNewsCommand struct {
	ID      uint
	Title   string
	Content string
	Date    time.Time
	Image   *string
}

type UpdateNewsUseCase struct {
	newsRepo news.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewUpdateNewsUseCase(newsRepo news.Repository, markdown markdown.Service, logger logger.Interface) *UpdateNewsUseCase {
	return &UpdateNewsUseCase{newsRepo: newsRepo, markdown: markdown, logger: logger}
}

func (uc *UpdateNewsUseCase) Execute(ctx context.Context, cmd UpdateNewsCommand) (*NewsResult, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("Title is required")
	}
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.NewValidationError("Content is required")
	}
	if cmd.Date.IsZero() {
		return nil, errors.NewValidationError("Date is required")
	}

	post, err := uc.newsRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get news post", "error", err, "news_id", cmd.ID)
		return nil, fmt.Errorf("failed to get news post: %w", err)
	}

	post.Title = cmd.Title
	post.Content = cmd.Content
	post.Date = cmd.Date
	post.Image = cmd.Image

	if err := uc.newsRepo.Update(ctx, post); err != nil {
		uc.logger.Errorw("failed to update news post", "error", err, "news_id", cmd.ID)
		return nil, fmt.Errorf("failed to update news post: %w", err)
	}

	uc.logger.Infow("news post updated", "news_id", cmd.ID)
	return renderNews(post, uc.markdown)
}
