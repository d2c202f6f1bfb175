package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/calendar"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type GetEventUseCase struct {
	eventRepo calendar.Repository
	logger    logger.Interface
}

func NewGetEventUseCase(eventRepo calendar.Repository, logger logger.Interface) *GetEventUseCase {
	return &GetEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, id uint) (*calendar.Event, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get calendar event", "error", err, "event_id", id)
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return event, nil
}
