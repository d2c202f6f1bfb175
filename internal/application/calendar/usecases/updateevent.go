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

type UpdateEventCommand struct {
	ID          uint
	Title       string
	Description string
	Date        time.Time
}

type UpdateEventUseCase struct {
	eventRepo calendar.Repository
	logger    logger.Interface
}

func NewUpdateEventUseCase(eventRepo calendar.Repository, logger logger.Interface) *UpdateEventUseCase {
	return &UpdateEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*calendar.Event, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.NewValidationError("Title is required")
	}
	if cmd.Date.IsZero() {
		return nil, errors.NewValidationError("Date is required")
	}

	event, err := uc.eventRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get calendar event", "error", err, "event_id", cmd.ID)
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	event.Title = cmd.Title
	event.Description = cmd.Description
	event.Date = cmd.Date

	if err := uc.eventRepo.Update(ctx, event); err != nil {
		uc.logger.Errorw("failed to update calendar event", "error", err, "event_id", cmd.ID)
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	uc.logger.Infow("calendar event updated", "event_id", cmd.ID)
	return event, nil
}
