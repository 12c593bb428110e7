package store

import (
	"context"
	"time"

	"ghitdesk/internal/infrastructure/seed"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Store is the aggregate of every collection the dashboard works with. One
// instance is built at startup, hydrated from snapshots with seed fallback,
// and shared across use cases.
type Store struct {
	Tickets  *Tickets
	Tasks    *Tasks
	Contacts *Contacts
	Events   *Events
	Users    *Users
	Flow     *Flow

	snaps snapshot.Store
	log   logger.Interface
}

// New builds the aggregate store and hydrates every collection. Seed time
// offsets resolve against the current clock, so a fresh dataset always looks
// recently active.
func New(ctx context.Context, snaps snapshot.Store, log logger.Interface) (*Store, error) {
	data, err := seed.Load(time.Now())
	if err != nil {
		return nil, err
	}
	return NewWithSeed(ctx, snaps, log, data), nil
}

// NewWithSeed builds the store against an explicit seed dataset. Tests use it
// to hydrate deterministic fixtures.
func NewWithSeed(ctx context.Context, snaps snapshot.Store, log logger.Interface, data *seed.Data) *Store {
	s := &Store{
		Tickets:  newTickets(snaps, log),
		Tasks:    newTasks(snaps, log),
		Contacts: newContacts(snaps, log),
		Events:   newEvents(snaps, log),
		Users:    newUsers(snaps, log),
		Flow:     newFlow(snaps, log),
		snaps:    snaps,
		log:      log.Named("store"),
	}

	s.Tickets.c.hydrate(ctx, data.Tickets)
	s.Tasks.c.hydrate(ctx, data.Tasks)
	s.Contacts.c.hydrate(ctx, data.Contacts)
	s.Events.c.hydrate(ctx, data.Events)
	s.Users.c.hydrate(ctx, data.Users)
	s.Flow.hydrate(ctx, data.FlowNodes, data.FlowConnections)

	return s
}

// Flush blocks until every outstanding snapshot write has completed. Called
// on shutdown and before snapshot reads that must observe prior mutations.
func (s *Store) Flush() {
	s.Tickets.c.flush()
	s.Tasks.c.flush()
	s.Contacts.c.flush()
	s.Events.c.flush()
	s.Users.c.flush()
	s.Flow.flush()
}

// Reset deletes every snapshot, returning the next startup to seed data.
func (s *Store) Reset(ctx context.Context) error {
	s.Flush()
	for _, key := range snapshot.Keys() {
		if err := s.snaps.Delete(ctx, key); err != nil {
			return err
		}
	}
	s.log.Infow("snapshots cleared, next startup reseeds from defaults")
	return nil
}
