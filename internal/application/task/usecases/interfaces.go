package usecases

import (
	"context"

	"ghitdesk/internal/domain/task"
)

// TaskStore is the collection surface the task use cases depend on.
type TaskStore interface {
	Add(ctx context.Context, t task.Task)
	Update(ctx context.Context, id string, u task.Update) (task.Task, bool)
	ToggleSubtask(ctx context.Context, id, subtaskID string) (task.Task, bool)
	Delete(ctx context.Context, id string) bool
	Get(ctx context.Context, id string) (task.Task, bool)
	List(ctx context.Context) []task.Task
}

type CreateTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error)
}

type UpdateTaskExecutor interface {
	Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error)
}

type DeleteTaskExecutor interface {
	Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error)
}

type ToggleSubtaskExecutor interface {
	Execute(ctx context.Context, cmd ToggleSubtaskCommand) (*ToggleSubtaskResult, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}
