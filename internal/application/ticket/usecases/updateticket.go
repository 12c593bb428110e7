package usecases

import (
	"context"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/domain/user"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// UpdateTicketCommand carries a shallow partial update. Nil fields are left
// unchanged; AssigneeID distinguishes "unchanged" (nil) from "unassign"
// (pointer to empty string).
type UpdateTicketCommand struct {
	TicketID    string
	Subject     *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *string
	Tags        []string
	UnreadCount *int
	SLAStatus   *string
}

type UpdateTicketResult struct {
	Ticket ticket.Ticket
}

type UpdateTicketUseCase struct {
	tickets TicketStore
	users   UserDirectory
	logger  logger.Interface
}

func NewUpdateTicketUseCase(
	tickets TicketStore,
	users UserDirectory,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		tickets: tickets,
		users:   users,
		logger:  logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	update, err := uc.buildUpdate(ctx, cmd)
	if err != nil {
		uc.logger.Errorw("invalid update ticket command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	updated, ok := uc.tickets.Update(ctx, cmd.TicketID, update)
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", updated.ID, "status", updated.Status)

	return &UpdateTicketResult{Ticket: updated}, nil
}

func (uc *UpdateTicketUseCase) buildUpdate(ctx context.Context, cmd UpdateTicketCommand) (ticket.Update, error) {
	var u ticket.Update

	u.Subject = cmd.Subject
	u.Description = cmd.Description
	u.Tags = cmd.Tags

	if cmd.Status != nil {
		status := ticket.Status(*cmd.Status)
		if !status.IsValid() {
			return ticket.Update{}, errors.NewValidationError("invalid status")
		}
		u.Status = &status
	}

	if cmd.Priority != nil {
		priority := common.Priority(*cmd.Priority)
		if !priority.IsValid() {
			return ticket.Update{}, errors.NewValidationError("invalid priority")
		}
		u.Priority = &priority
	}

	if cmd.SLAStatus != nil {
		sla := ticket.SLAStatus(*cmd.SLAStatus)
		if !sla.IsValid() {
			return ticket.Update{}, errors.NewValidationError("invalid sla status")
		}
		u.SLAStatus = &sla
	}

	if cmd.UnreadCount != nil {
		if *cmd.UnreadCount < 0 {
			return ticket.Update{}, errors.NewValidationError("unread count cannot be negative")
		}
		u.UnreadCount = cmd.UnreadCount
	}

	if cmd.AssigneeID != nil {
		if *cmd.AssigneeID == "" {
			var none *user.User
			u.Assignee = &none
		} else {
			assignee, ok := uc.users.Get(ctx, *cmd.AssigneeID)
			if !ok {
				return ticket.Update{}, errors.NewNotFoundError("assignee not found")
			}
			ptr := &assignee
			u.Assignee = &ptr
		}
	}

	return u, nil
}
