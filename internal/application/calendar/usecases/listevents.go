package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/calendar"
	"clubcms/internal/shared/logger"
)

type ListEventsUseCase struct {
	eventRepo calendar.Repository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo calendar.Repository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context) ([]*calendar.Event, error) {
	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list calendar events", "error", err)
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}
