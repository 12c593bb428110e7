package usecases

import (
	"context"
	"strings"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// ListTicketsQuery filters the ordered collection. Zero values mean "all";
// Search matches subject and customer name case-insensitively.
type ListTicketsQuery struct {
	Status   string
	Priority string
	Channel  string
	Search   string
}

type ListTicketsResult struct {
	Tickets []ticket.Ticket
	Total   int
}

type ListTicketsUseCase struct {
	tickets TicketStore
	logger  logger.Interface
}

func NewListTicketsUseCase(tickets TicketStore, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{tickets: tickets, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Status != "" && !ticket.Status(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status filter")
	}

	all := uc.tickets.List(ctx)
	search := strings.ToLower(query.Search)

	filtered := make([]ticket.Ticket, 0, len(all))
	for _, t := range all {
		if query.Status != "" && t.Status != ticket.Status(query.Status) {
			continue
		}
		if query.Priority != "" && string(t.Priority) != query.Priority {
			continue
		}
		if query.Channel != "" && string(t.Channel) != query.Channel {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Subject), search) &&
			!strings.Contains(strings.ToLower(t.Customer.Name), search) {
			continue
		}
		filtered = append(filtered, t)
	}

	return &ListTicketsResult{Tickets: filtered, Total: len(filtered)}, nil
}
