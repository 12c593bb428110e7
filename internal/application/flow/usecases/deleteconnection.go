package usecases

import (
	"context"

	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type DeleteConnectionCommand struct {
	ConnectionID string
}

type DeleteConnectionResult struct {
	Deleted bool
}

type DeleteConnectionUseCase struct {
	flows  FlowStore
	logger logger.Interface
}

func NewDeleteConnectionUseCase(flows FlowStore, logger logger.Interface) *DeleteConnectionUseCase {
	return &DeleteConnectionUseCase{flows: flows, logger: logger}
}

func (uc *DeleteConnectionUseCase) Execute(ctx context.Context, cmd DeleteConnectionCommand) (*DeleteConnectionResult, error) {
	if cmd.ConnectionID == "" {
		return nil, errors.NewValidationError("connection ID is required")
	}

	deleted := uc.flows.DeleteConnection(ctx, cmd.ConnectionID)
	if deleted {
		uc.logger.Infow("connection deleted", "connection_id", cmd.ConnectionID)
	}

	return &DeleteConnectionResult{Deleted: deleted}, nil
}
