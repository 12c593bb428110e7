package store

import (
	"context"

	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/infrastructure/snapshot"
	"ghitdesk/internal/shared/logger"
)

// Tasks is the board-task collection, ordered newest first.
type Tasks struct {
	c *collection[task.Task]
}

func newTasks(snaps snapshot.Store, log logger.Interface) *Tasks {
	return &Tasks{
		c: newCollection(snapshot.KeyTasks, func(t task.Task) string { return t.ID }, snaps, log),
	}
}

func (s *Tasks) Add(ctx context.Context, t task.Task) {
	s.c.insertHead(t)
}

func (s *Tasks) Update(ctx context.Context, id string, u task.Update) (task.Task, bool) {
	return s.c.update(id, func(t *task.Task) { t.Apply(u) })
}

// ToggleSubtask flips one subtask and recomputes checklist and progress in
// the same mutation, so the derived counters can never be observed stale.
func (s *Tasks) ToggleSubtask(ctx context.Context, id, subtaskID string) (task.Task, bool) {
	found := false
	t, ok := s.c.update(id, func(t *task.Task) {
		found = t.ToggleSubtask(subtaskID)
	})
	if !ok || !found {
		return task.Task{}, false
	}
	return t, true
}

func (s *Tasks) Delete(ctx context.Context, id string) bool {
	return s.c.remove(id)
}

func (s *Tasks) Get(ctx context.Context, id string) (task.Task, bool) {
	return s.c.get(id)
}

func (s *Tasks) List(ctx context.Context) []task.Task {
	return s.c.list()
}
