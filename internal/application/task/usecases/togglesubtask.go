package usecases

import (
	"context"

	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type ToggleSubtaskCommand struct {
	TaskID    string
	SubtaskID string
}

type ToggleSubtaskResult struct {
	Task task.Task
}

type ToggleSubtaskUseCase struct {
	tasks  TaskStore
	logger logger.Interface
}

func NewToggleSubtaskUseCase(tasks TaskStore, logger logger.Interface) *ToggleSubtaskUseCase {
	return &ToggleSubtaskUseCase{tasks: tasks, logger: logger}
}

// Execute flips one subtask. The store recomputes the checklist counters and
// progress in the same mutation.
func (uc *ToggleSubtaskUseCase) Execute(ctx context.Context, cmd ToggleSubtaskCommand) (*ToggleSubtaskResult, error) {
	if cmd.TaskID == "" {
		return nil, errors.NewValidationError("task ID is required")
	}
	if cmd.SubtaskID == "" {
		return nil, errors.NewValidationError("subtask ID is required")
	}

	updated, ok := uc.tasks.ToggleSubtask(ctx, cmd.TaskID, cmd.SubtaskID)
	if !ok {
		return nil, errors.NewNotFoundError("task or subtask not found")
	}

	uc.logger.Infow("subtask toggled", "task_id", updated.ID, "subtask_id", cmd.SubtaskID,
		"progress", updated.Progress)

	return &ToggleSubtaskResult{Task: updated}, nil
}
