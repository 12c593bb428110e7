package store

import (
	"context"

	"ghitdesk/internal/domain/calendar"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Events is the calendar collection. Unlike tickets and contacts, events
// append at the tail: the calendar orders by time, not recency of creation.
type Events struct {
	c *collection[calendar.Event]
}

func newEvents(snaps snapshot.Store, log logger.Interface) *Events {
	return &Events{
		c: newCollection(snapshot.KeyEvents, func(e calendar.Event) string { return e.ID }, snaps, log),
	}
}

func (s *Events) Add(ctx context.Context, e calendar.Event) {
	s.c.insertTail(e)
}

func (s *Events) Update(ctx context.Context, id string, u calendar.Update) (calendar.Event, bool) {
	return s.c.update(id, func(e *calendar.Event) { e.Apply(u) })
}

func (s *Events) Delete(ctx context.Context, id string) bool {
	return s.c.remove(id)
}

func (s *Events) Get(ctx context.Context, id string) (calendar.Event, bool) {
	return s.c.get(id)
}

func (s *Events) List(ctx context.Context) []calendar.Event {
	return s.c.list()
}
