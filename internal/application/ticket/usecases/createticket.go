package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	CustomerID  string
	Channel     string
	Priority    string
	Tags        []string
}

type CreateTicketResult struct {
	Ticket ticket.Ticket
}

type CreateTicketUseCase struct {
	tickets TicketStore
	users   UserDirectory
	logger  logger.Interface
}

func NewCreateTicketUseCase(
	tickets TicketStore,
	users UserDirectory,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		tickets: tickets,
		users:   users,
		logger:  logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "customer_id", cmd.CustomerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	customer, ok := uc.users.Get(ctx, cmd.CustomerID)
	if !ok {
		return nil, errors.NewNotFoundError("customer not found")
	}

	priority := common.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = common.PriorityMedium
	}

	t := ticket.Ticket{
		ID:            id.NewTicketID(),
		Subject:       cmd.Subject,
		Description:   cmd.Description,
		Customer:      customer,
		Channel:       common.ChannelType(cmd.Channel),
		Status:        ticket.StatusOpen,
		Priority:      priority,
		LastMessageAt: time.Now(),
		Messages:      []ticket.Message{},
		Tags:          cmd.Tags,
		UnreadCount:   0,
		SLAStatus:     ticket.SLAOK,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if err := t.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	uc.tickets.Add(ctx, t)

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID, "channel", t.Channel)

	return &CreateTicketResult{Ticket: t}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}

	if len(cmd.CustomerID) == 0 {
		return errors.NewValidationError("customer ID is required")
	}

	if !common.ChannelType(cmd.Channel).IsValid() {
		return errors.NewValidationError("invalid channel")
	}

	if cmd.Priority != "" && !common.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
