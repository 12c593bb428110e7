package usecases

import (
	"context"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/domain/user"
)

// TicketStore is the collection surface the ticket use cases depend on.
type TicketStore interface {
	Add(ctx context.Context, t ticket.Ticket)
	Update(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool)
	Delete(ctx context.Context, id string) bool
	Get(ctx context.Context, id string) (ticket.Ticket, bool)
	List(ctx context.Context) []ticket.Ticket
}

// UserDirectory resolves users referenced by tickets.
type UserDirectory interface {
	Get(ctx context.Context, id string) (user.User, bool)
	Current(ctx context.Context) (user.User, bool)
}

// MessageRenderer prepares message content for storage and display.
type MessageRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
	PlainText(input string) string
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
