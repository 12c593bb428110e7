package store

import (
	"context"

	"ghitdesk/internal/domain/user"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Users is the seeded user directory. Entries are add-only: identity is
// immutable and nothing in the dashboard edits or removes directory users.
type Users struct {
	c *collection[user.User]
}

func newUsers(snaps snapshot.Store, log logger.Interface) *Users {
	return &Users{
		c: newCollection(snapshot.KeyUsers, func(u user.User) string { return u.ID }, snaps, log),
	}
}

func (s *Users) Add(ctx context.Context, u user.User) {
	s.c.insertTail(u)
}

func (s *Users) Get(ctx context.Context, id string) (user.User, bool) {
	return s.c.get(id)
}

func (s *Users) List(ctx context.Context) []user.User {
	return s.c.list()
}

// Current returns the acting agent: the first directory entry, by convention.
func (s *Users) Current(ctx context.Context) (user.User, bool) {
	users := s.c.list()
	if len(users) == 0 {
		return user.User{}, false
	}
	return users[0], true
}
