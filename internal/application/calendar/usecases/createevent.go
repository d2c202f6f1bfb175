package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubcms/internal/domain/calendar"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type CreateEventCommand struct {
	Title       string
	Description string
	Date        time.Time
	CreatedBy   uint
}

type CreateEventUseCase struct {
	eventRepo calendar.Repository
	logger    logger.Interface
}

func NewCreateEventUseCase(eventRepo calendar.Repository, logger logger.Interface) *CreateEventUseCase {
	return &CreateEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (*calendar.Event, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("Title is required")
	}
	if cmd.Date.IsZero() {
		return nil, errors.NewValidationError("Date is required")
	}

	event := &calendar.Event{
		Title:       cmd.Title,
		Description: cmd.Description,
		Date:        cmd.Date,
		CreatedBy:   cmd.CreatedBy,
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to create calendar event", "error", err)
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	uc.logger.Infow("calendar event created", "event_id", event.ID, "user_id", cmd.CreatedBy)
	return event, nil
}
