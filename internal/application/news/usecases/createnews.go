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

type CreateNewsCommand struct {
	Title     string
	Content   string
	Date      time.Time
	Image     *string
	CreatedBy uint
}

// NewsResult pairs a post with its markdown content rendered to sanitized
// HTML, ready for the public site to embed.
type NewsResult struct {
	News        *news.News
	ContentHTML string
}

type CreateNewsUseCase struct {
	newsRepo news.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewCreateNewsUseCase(newsRepo news.Repository, markdown markdown.Service, logger logger.Interface) *CreateNewsUseCase {
	return &CreateNewsUseCase{newsRepo: newsRepo, markdown: markdown, logger: logger}
}

func (uc *CreateNewsUseCase) Execute(ctx context.Context, cmd CreateNewsCommand) (*NewsResult, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("Title is required")
	}
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.NewValidationError("Content is required")
	}
	if cmd.Date.IsZero() {
		return nil, errors.NewValidationError("Date is required")
	}

	post := &news.News{
		Title:     cmd.Title,
		Content:   cmd.Content,
		Date:      cmd.Date,
		Image:     cmd.Image,
		CreatedBy: cmd.CreatedBy,
	}

	if err := uc.newsRepo.Create(ctx, post); err != nil {
		uc.logger.Errorw("failed to create news post", "error", err)
		return nil, fmt.Errorf("failed to create news post: %w", err)
	}

	uc.logger.Infow("news post created", "news_id", post.ID, "user_id", cmd.CreatedBy)
	return renderNews(post, uc.markdown)
}

func renderNews(post *news.News, md markdown.Service) (*NewsResult, error) {
	html, err := md.ToHTMLSanitized(post.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to render news content: %w", err)
	}
	return &NewsResult{News: post, ContentHTML: html}, nil
}
