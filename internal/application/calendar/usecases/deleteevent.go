package usecases

import (
	"context"
	"fmt"

	"clubcms/internal/domain/calendar"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type DeleteEventUseCase struct {
	eventRepo calendar.Repository
	logger    logger.Interface
}

func NewDeleteEventUseCase(eventRepo calendar.Repository, logger logger.Interface) *DeleteEventUseCase {
	return &DeleteEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := uc.eventRepo.GetByID(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get calendar event", "error", err, "event_id", id)
		return fmt.Errorf("failed to get calendar event: %w", err)
	}

	if err := uc.eventRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete calendar event", "error", err, "event_id", id)
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}

	uc.logger.Infow("calendar event deleted", "event_id", id)
	return nil
}
