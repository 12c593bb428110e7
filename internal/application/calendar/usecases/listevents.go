package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/calendar"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// ListEventsQuery filters by type and time window. Zero values mean "all";
// the window includes events overlapping [From, To).
type ListEventsQuery struct {
	Type string
	From time.Time
	To   time.Time
}

type ListEventsResult struct {
	Events []calendar.Event
	Total  int
}

type ListEventsUseCase struct {
	events EventStore
	logger logger.Interface
}

func NewListEventsUseCase(events EventStore, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{events: events, logger: logger}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error) {
	if query.Type != "" && !calendar.EventType(query.Type).IsValid() {
		return nil, errors.NewValidationError("invalid event type filter")
	}

	all := uc.events.List(ctx)
	filtered := make([]calendar.Event, 0, len(all))
	for _, e := range all {
		if query.Type != "" && e.Type != calendar.EventType(query.Type) {
			continue
		}
		if !query.From.IsZero() && !e.End.After(query.From) {
			continue
		}
		if !query.To.IsZero() && !e.Start.Before(query.To) {
			continue
		}
		filtered = append(filtered, e)
	}

	return &ListEventsResult{Events: filtered, Total: len(filtered)}, nil
}
