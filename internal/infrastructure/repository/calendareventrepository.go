package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clubcms/internal/domain/calendar"
	"clubcms/internal/infrastructure/persistence/models"
	"clubcms/internal/shared/errors"
)

type CalendarEventRepository struct {
	db *gorm.DB
}

func NewCalendarEventRepository(db *gorm.DB) calendar.Repository {
	return &CalendarEventRepository{db: db}
}

func (r *CalendarEventRepository) Create(ctx context.Context, e *calendar.Event) error {
	model := eventToModel(e)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	e.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CalendarEventRepository) GetByID(ctx context.Context, id uint) (*calendar.Event, error) {
	var model models.CalendarEventModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("event not found")
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return eventToDomain(&model), nil
}

func (r *CalendarEventRepository) List(ctx context.Context) ([]*calendar.Event, error) {
	var eventModels []models.CalendarEventModel
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	events := make([]*calendar.Event, len(eventModels))
	for i := range eventModels {
		events[i] = eventToDomain(&eventModels[i])
	}
	return events, nil
}

func (r *CalendarEventRepository) Update(ctx context.Context, e *calendar.Event) error {
	result := r.db.WithContext(ctx).Model(&models.CalendarEventModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"title":       e.Title,
			"description": e.Description,
			"date":        e.Date,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update calendar event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("event not found")
	}
	return nil
}

func (r *CalendarEventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CalendarEventModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete calendar event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("event not found")
	}
	return nil
}

func eventToModel(e *calendar.Event) *models.CalendarEventModel {
	return &models.CalendarEventModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func eventToDomain(m *models.CalendarEventModel) *calendar.Event {
	return &calendar.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
