package store

import (
	"context"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Tickets is the ticket collection, ordered newest first.
type Tickets struct {
	c *collection[ticket.Ticket]
}

func newTickets(snaps snapshot.Store, log logger.Interface) *Tickets {
	return &Tickets{
		c: newCollection(snapshot.KeyTickets, func(t ticket.Ticket) string { return t.ID }, snaps, log),
	}
}

// Add inserts the ticket at the head of the collection. No uniqueness check
// is performed on the ID; callers generate unique IDs.
func (s *Tickets) Add(ctx context.Context, t ticket.Ticket) {
	s.c.insertHead(t)
}

// Update merges the partial update into the matching ticket. Unknown IDs are
// a silent no-op; the bool reports whether a ticket was found.
func (s *Tickets) Update(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool) {
	return s.c.update(id, func(t *ticket.Ticket) { t.Apply(u) })
}

// Delete removes the matching ticket. Nothing cascades: messages die with
// their ticket, and soft references from events are left dangling.
func (s *Tickets) Delete(ctx context.Context, id string) bool {
	return s.c.remove(id)
}

// Get returns the ticket with the given ID.
func (s *Tickets) Get(ctx context.Context, id string) (ticket.Ticket, bool) {
	return s.c.get(id)
}

// List returns the full ordered collection. Filtering and search are consumer
// concerns.
func (s *Tickets) List(ctx context.Context) []ticket.Ticket {
	return s.c.list()
}
