// Package store owns the in-memory entity collections behind the dashboard:
// tickets, tasks, contacts, calendar events, the user directory, and the
// automation-flow graph. Every mutation serializes the affected collection and
// writes its snapshot fire-and-forget; hydration happens once at construction,
// falling back to seed data when a snapshot is absent or unreadable.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

const persistTimeout = 5 * time.Second

// collection is the generic ordered collection underlying each typed store.
// The mutex guards against interleaving between the interactive caller and
// assistant tool invocations; there is still a single logical writer.
type collection[T any] struct {
	mu     sync.Mutex
	key    string
	idOf   func(T) string
	items  []T
	writer *snapshotWriter
	snaps  snapshot.Store
	log    logger.Interface
}

func newCollection[T any](key string, idOf func(T) string, snaps snapshot.Store, log logger.Interface) *collection[T] {
	named := log.Named("store." + key)
	return &collection[T]{
		key:    key,
		idOf:   idOf,
		snaps:  snaps,
		log:    named,
		writer: newSnapshotWriter(key, snaps, named),
	}
}

// hydrate loads the collection from its snapshot, falling back to seed data
// when the snapshot is missing or fails to parse. Never returns an error; a
// bad snapshot is logged and discarded.
func (c *collection[T]) hydrate(ctx context.Context, seed []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.snaps.Read(ctx, c.key)
	if err == nil {
		var items []T
		jsonErr := json.Unmarshal(data, &items)
		if jsonErr == nil {
			c.items = items
			return
		}
		c.log.Warnw("discarding malformed snapshot, falling back to seed data",
			"collection", c.key, "error", jsonErr)
	} else if !errors.Is(err, snapshot.ErrNotFound) {
		c.log.Warnw("failed to read snapshot, falling back to seed data",
			"collection", c.key, "error", err)
	}

	c.items = make([]T, len(seed))
	copy(c.items, seed)
}

// list returns a copy of the full ordered collection.
func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// get returns the entity with the given id.
func (c *collection[T]) get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// insertHead prepends the entity (new-first ordering) and persists.
func (c *collection[T]) insertHead(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.persistLocked()
}

// insertTail appends the entity and persists.
func (c *collection[T]) insertTail(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.persistLocked()
}

// update applies mutate to the entity with the given id and persists.
// Unknown ids are a silent no-op; the bool reports whether a match was found.
func (c *collection[T]) update(id string, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			mutate(&c.items[i])
			updated := c.items[i]
			c.persistLocked()
			return updated, true
		}
	}
	var zero T
	return zero, false
}

// remove deletes the entity with the given id and persists. Idempotent:
// removing an absent id leaves the collection untouched and skips the write.
func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked()
			return true
		}
	}
	return false
}

// replaceAll swaps in a whole new collection in one operation with a single
// snapshot write. Used for bulk position updates.
func (c *collection[T]) replaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.persistLocked()
}

// persistLocked serializes the collection and hands it to the async writer.
func (c *collection[T]) persistLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		c.log.Errorw("failed to serialize collection", "collection", c.key, "error", err)
		return
	}
	c.writer.write(data)
}

// flush blocks until every outstanding snapshot write has completed.
func (c *collection[T]) flush() {
	c.writer.flush()
}
