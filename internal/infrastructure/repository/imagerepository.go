package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clubcms/internal/domain/image"
	"clubcms/internal/infrastructure/persistence/models"
	"clubcms/internal/shared/errors"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) image.Repository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, img *image.Image) error {
	model := imageToModel(img)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create image record: %w", err)
	}
	img.ID = model.ID
	img.CreatedAt = model.CreatedAt
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id uint) (*image.Image, error) {
	var model models.ImageModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("image not found")
		}
		return nil, fmt.Errorf("failed to get image by ID: %w", err)
	}
	return imageToDomain(&model), nil
}

func (r *ImageRepository) List(ctx context.Context, filter image.ListFilter) ([]*image.Image, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ImageModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count images: %w", err)
	}

	var imageModels []models.ImageModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&imageModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list images: %w", err)
	}

	images := make([]*image.Image, len(imageModels))
	for i := range imageModels {
		images[i] = imageToDomain(&imageModels[i])
	}
	return images, total, nil
}

func (r *ImageRepository) UpdateMetadata(ctx context.Context, id uint, altText, category string) error {
	result := r.db.WithContext(ctx).Model(&models.ImageModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"alt_text": altText,
			"category": category,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update image metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("image not found")
	}
	return nil
}

func (r *ImageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ImageModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete image record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("image not found")
	}
	return nil
}

func imageToModel(img *image.Image) *models.ImageModel {
	return &models.ImageModel{
		ID:            img.ID,
		Filename:      img.Filename,
		OriginalName:  img.OriginalName,
		MimeType:      img.MimeType,
		Size:          img.Size,
		Path:          img.Path,
		ThumbnailPath: img.ThumbnailPath,
		AltText:       img.AltText,
		Category:      img.Category,
		UploadedBy:    img.UploadedBy,
		CreatedAt:     img.CreatedAt,
	}
}

func imageToDomain(m *models.ImageModel) *image.Image {
	return &image.Image{
		ID:            m.ID,
		Filename:      m.Filename,
		OriginalName:  m.OriginalName,
		MimeType:      m.MimeType,
		Size:          m.Size,
		Path:          m.Path,
		ThumbnailPath: m.ThumbnailPath,
		AltText:       m.AltText,
		Category:      m.Category,
		UploadedBy:    m.UploadedBy,
		CreatedAt:     m.CreatedAt,
	}
}
