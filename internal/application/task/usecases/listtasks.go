package usecases

import (
	"context"

	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// ListTasksQuery filters by board column and project. Zero values mean "all".
type ListTasksQuery struct {
	Status  string
	Project string
}

type ListTasksResult struct {
	Tasks []task.Task
	Total int
}

type ListTasksUseCase struct {
	tasks  TaskStore
	logger logger.Interface
}

func NewListTasksUseCase(tasks TaskStore, logger logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{tasks: tasks, logger: logger}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	if query.Status != "" && !task.Status(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status filter")
	}

	all := uc.tasks.List(ctx)
	filtered := make([]task.Task, 0, len(all))
	for _, t := range all {
		if query.Status != "" && t.Status != task.Status(query.Status) {
			continue
		}
		if query.Project != "" && t.Project != query.Project {
			continue
		}
		filtered = append(filtered, t)
	}

	return &ListTasksResult{Tasks: filtered, Total: len(filtered)}, nil
}
