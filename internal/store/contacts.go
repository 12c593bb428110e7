package store

import (
	"context"

	"ghitdesk/internal/domain/contact"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Contacts is the address-book collection, ordered newest first.
type Contacts struct {
	c *collection[contact.Contact]
}

func newContacts(snaps snapshot.Store, log logger.Interface) *Contacts {
	return &Contacts{
		c: newCollection(snapshot.KeyContacts, func(c contact.Contact) string { return c.ID }, snaps, log),
	}
}

func (s *Contacts) Add(ctx context.Context, c contact.Contact) {
	s.c.insertHead(c)
}

func (s *Contacts) Update(ctx context.Context, id string, u contact.Update) (contact.Contact, bool) {
	return s.c.update(id, func(c *contact.Contact) { c.Apply(u) })
}

func (s *Contacts) Delete(ctx context.Context, id string) bool {
	return s.c.remove(id)
}

func (s *Contacts) Get(ctx context.Context, id string) (contact.Contact, bool) {
	return s.c.get(id)
}

func (s *Contacts) List(ctx context.Context) []contact.Contact {
	return s.c.list()
}
