package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/calendar"
	"ghitdesk/internal/domain/user"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

type CreateEventCommand struct {
	Title           string
	Description     string
	Start           time.Time
	End             time.Time
	Type            string
	AttendeeIDs     []string
	RelatedTicketID string
}

type CreateEventResult struct {
	Event calendar.Event
}

type CreateEventUseCase struct {
	events EventStore
	users  UserDirectory
	logger logger.Interface
}

func NewCreateEventUseCase(
	events EventStore,
	users UserDirectory,
	logger logger.Interface,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		events: events,
		users:  users,
		logger: logger,
	}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (*CreateEventResult, error) {
	uc.logger.Infow("executing create event use case", "title", cmd.Title, "type", cmd.Type)

	// Unknown attendee IDs are dropped rather than rejected; the soft ticket
	// reference is never checked.
	attendees := []user.User{}
	for _, attendeeID := range cmd.AttendeeIDs {
		if u, ok := uc.users.Get(ctx, attendeeID); ok {
			attendees = append(attendees, u)
		}
	}

	e := calendar.Event{
		ID:              id.NewEventID(),
		Title:           cmd.Title,
		Description:     cmd.Description,
		Start:           cmd.Start,
		End:             cmd.End,
		Type:            calendar.EventType(cmd.Type),
		Attendees:       attendees,
		Status:          calendar.StatusScheduled,
		RelatedTicketID: cmd.RelatedTicketID,
	}
	if err := e.Validate(); err != nil {
		uc.logger.Errorw("invalid create event command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	uc.events.Add(ctx, e)

	uc.logger.Infow("event created successfully", "event_id", e.ID)

	return &CreateEventResult{Event: e}, nil
}
