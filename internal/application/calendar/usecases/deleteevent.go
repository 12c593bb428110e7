package usecases

import (
	"context"

	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type DeleteEventCommand struct {
	EventID string
}

type DeleteEventResult struct {
	Deleted bool
}

type DeleteEventUseCase struct {
	events EventStore
	logger logger.Interface
}

func NewDeleteEventUseCase(events EventStore, logger logger.Interface) *DeleteEventUseCase {
	return &DeleteEventUseCase{events: events, logger: logger}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) (*DeleteEventResult, error) {
	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event ID is required")
	}

	deleted := uc.events.Delete(ctx, cmd.EventID)
	if deleted {
		uc.logger.Infow("event deleted", "event_id", cmd.EventID)
	}

	return &DeleteEventResult{Deleted: deleted}, nil
}
