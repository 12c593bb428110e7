package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

// SendMessageCommand appends a message to a ticket's conversation. SenderID
// defaults to the current agent when empty. Inbound customer messages are
// stripped to plain text; agent messages keep their markdown source and the
// result carries a sanitized HTML rendering for display.
type SendMessageCommand struct {
	TicketID   string
	SenderID   string
	Content    string
	IsInternal bool
}

type SendMessageResult struct {
	Ticket       ticket.Ticket
	Message      ticket.Message
	RenderedHTML string
}

type SendMessageUseCase struct {
	tickets  TicketStore
	users    UserDirectory
	renderer MessageRenderer
	logger   logger.Interface
}

func NewSendMessageUseCase(
	tickets TicketStore,
	users UserDirectory,
	renderer MessageRenderer,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		tickets:  tickets,
		users:    users,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	uc.logger.Infow("executing send message use case", "ticket_id", cmd.TicketID, "internal", cmd.IsInternal)

	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Content == "" {
		return nil, errors.NewValidationError("message content is required")
	}

	current, ok := uc.tickets.Get(ctx, cmd.TicketID)
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	senderID := cmd.SenderID
	if senderID == "" {
		agent, ok := uc.users.Current(ctx)
		if !ok {
			return nil, errors.NewInternalError("no current user available")
		}
		senderID = agent.ID
	}

	content := cmd.Content
	fromCustomer := senderID == current.Customer.ID
	if fromCustomer {
		content = uc.renderer.PlainText(content)
	}

	msg := ticket.Message{
		ID:         id.NewMessageID(),
		SenderID:   senderID,
		Content:    content,
		Timestamp:  time.Now(),
		IsInternal: cmd.IsInternal,
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	updated, ok := uc.tickets.Update(ctx, cmd.TicketID, current.AppendMessage(msg))
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result := &SendMessageResult{Ticket: updated, Message: msg}
	if !fromCustomer {
		html, err := uc.renderer.ToHTMLSanitized(content)
		if err != nil {
			uc.logger.Warnw("failed to render message markdown", "ticket_id", cmd.TicketID, "error", err)
		} else {
			result.RenderedHTML = html
		}
	}

	uc.logger.Infow("message sent", "ticket_id", updated.ID, "message_id", msg.ID)

	return result, nil
}
