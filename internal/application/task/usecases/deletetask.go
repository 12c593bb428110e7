package usecases

import (
	"context"

	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type DeleteTaskCommand struct {
	TaskID string
}

type DeleteTaskResult struct {
	Deleted bool
}

type DeleteTaskUseCase struct {
	tasks  TaskStore
	logger logger.Interface
}

func NewDeleteTaskUseCase(tasks TaskStore, logger logger.Interface) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{tasks: tasks, logger: logger}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	if cmd.TaskID == "" {
		return nil, errors.NewValidationError("task ID is required")
	}

	deleted := uc.tasks.Delete(ctx, cmd.TaskID)
	if deleted {
		uc.logger.Infow("task deleted", "task_id", cmd.TaskID)
	}

	return &DeleteTaskResult{Deleted: deleted}, nil
}
