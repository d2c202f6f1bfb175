package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clubcms/internal/domain/news"
	"clubcms/internal/infrastructure/persistence/models"
	"clubcms/internal/shared/errors"
)

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) news.Repository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, n *news.News) error {
	model := newsToModel(n)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create news post: %w", err)
	}
	n.ID = model.ID
	n.CreatedAt = model.CreatedAt
	n.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id uint) (*news.News, error) {
	var model models.NewsModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("news post not found")
		}
		return nil, fmt.Errorf("failed to get news post: %w", err)
	}
	return newsToDomain(&model), nil
}

func (r *NewsRepository) List(ctx context.Context) ([]*news.News, error) {
	var newsModels []models.NewsModel
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&newsModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list news posts: %w", err)
	}
	posts := make([]*news.News, len(newsModels))
	for i := range newsModels {
		posts[i] = newsToDomain(&newsModels[i])
	}
	return posts, nil
}

func (r *NewsRepository) Update(ctx context.Context, n *news.News) error {
	result := r.db.WithContext(ctx).Model(&models.NewsModel{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{
			"title":   n.Title,
			"content": n.Content,
			"date":    n.Date,
			"image":   n.Image,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update news post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("news post not found")
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.NewsModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete news post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("news post not found")
	}
	return nil
}

func newsToModel(n *news.News) *models.NewsModel {
	return &models.NewsModel{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Date:      n.Date,
		Image:     n.Image,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func newsToDomain(m *models.NewsModel) *news.News {
	return &news.News{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Date:      m.Date,
		Image:     m.Image,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
