package usecases

import (
	"context"

	"ghitdesk/internal/domain/calendar"
	"ghitdesk/internal/domain/user"
)

// EventStore is the collection surface the calendar use cases depend on.
type EventStore interface {
	Add(ctx context.Context, e calendar.Event)
	Update(ctx context.Context, id string, u calendar.Update) (calendar.Event, bool)
	Delete(ctx context.Context, id string) bool
	Get(ctx context.Context, id string) (calendar.Event, bool)
	List(ctx context.Context) []calendar.Event
}

// UserDirectory resolves attendee references.
type UserDirectory interface {
	Get(ctx context.Context, id string) (user.User, bool)
}

type CreateEventExecutor interface {
	Execute(ctx context.Context, cmd CreateEventCommand) (*CreateEventResult, error)
}

type UpdateEventExecutor interface {
	Execute(ctx context.Context, cmd UpdateEventCommand) (*UpdateEventResult, error)
}

type DeleteEventExecutor interface {
	Execute(ctx context.Context, cmd DeleteEventCommand) (*DeleteEventResult, error)
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error)
}
