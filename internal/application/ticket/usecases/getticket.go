package usecases

import (
	"context"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	tickets TicketStore
	logger  logger.Interface
}

func NewGetTicketUseCase(tickets TicketStore, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{tickets: tickets, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	if query.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, ok := uc.tickets.Get(ctx, query.TicketID)
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &t, nil
}
