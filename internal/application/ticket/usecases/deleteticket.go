package usecases

import (
	"context"

	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
}

type DeleteTicketResult struct {
	Deleted bool
}

type DeleteTicketUseCase struct {
	tickets TicketStore
	logger  logger.Interface
}

func NewDeleteTicketUseCase(tickets TicketStore, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{tickets: tickets, logger: logger}
}

// Execute removes the ticket and its message history. Events that reference
// the ticket keep their dangling ID; nothing cascades.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	deleted := uc.tickets.Delete(ctx, cmd.TicketID)
	if deleted {
		uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	}

	return &DeleteTicketResult{Deleted: deleted}, nil
}
