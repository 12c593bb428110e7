package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/calendar"
	"ghitdesk/internal/domain/user"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// UpdateEventCommand carries a shallow partial update; nil fields are left
// unchanged. AttendeeIDs replaces the attendee list when non-nil.
type UpdateEventCommand struct {
	EventID         string
	Title           *string
	Description     *string
	Start           *time.Time
	End             *time.Time
	Type            *string
	AttendeeIDs     []string
	Status          *string
	RelatedTicketID *string
}

type UpdateEventResult struct {
	Event calendar.Event
}

type UpdateEventUseCase struct {
	events EventStore
	users  UserDirectory
	logger logger.Interface
}

func NewUpdateEventUseCase(
	events EventStore,
	users UserDirectory,
	logger logger.Interface,
) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		events: events,
		users:  users,
		logger: logger,
	}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*UpdateEventResult, error) {
	uc.logger.Infow("executing update event use case", "event_id", cmd.EventID)

	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event ID is required")
	}

	u := calendar.Update{
		Title:           cmd.Title,
		Description:     cmd.Description,
		Start:           cmd.Start,
		End:             cmd.End,
		RelatedTicketID: cmd.RelatedTicketID,
	}

	if cmd.Type != nil {
		eventType := calendar.EventType(*cmd.Type)
		if !eventType.IsValid() {
			return nil, errors.NewValidationError("invalid event type")
		}
		u.Type = &eventType
	}

	if cmd.Status != nil {
		status := calendar.EventStatus(*cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid event status")
		}
		u.Status = &status
	}

	if cmd.AttendeeIDs != nil {
		attendees := []user.User{}
		for _, attendeeID := range cmd.AttendeeIDs {
			if au, ok := uc.users.Get(ctx, attendeeID); ok {
				attendees = append(attendees, au)
			}
		}
		u.Attendees = attendees
	}

	updated, ok := uc.events.Update(ctx, cmd.EventID, u)
	if !ok {
		return nil, errors.NewNotFoundError("event not found")
	}

	uc.logger.Infow("event updated successfully", "event_id", updated.ID, "status", updated.Status)

	return &UpdateEventResult{Event: updated}, nil
}
