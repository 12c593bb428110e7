package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// UpdateTaskCommand carries a shallow partial update. ClearDueDate takes
// precedence over DueDate; Subtasks replace the whole checklist.
type UpdateTaskCommand struct {
	TaskID       string
	Title        *string
	Status       *string
	Priority     *string
	Tags         []string
	Project      *string
	DueDate      *time.Time
	ClearDueDate bool
	Subtasks     []task.Subtask
}

type UpdateTaskResult struct {
	Task task.Task
}

type UpdateTaskUseCase struct {
	tasks  TaskStore
	logger logger.Interface
}

func NewUpdateTaskUseCase(tasks TaskStore, logger logger.Interface) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{tasks: tasks, logger: logger}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	uc.logger.Infow("executing update task use case", "task_id", cmd.TaskID)

	if cmd.TaskID == "" {
		return nil, errors.NewValidationError("task ID is required")
	}

	update, err := uc.buildUpdate(cmd)
	if err != nil {
		uc.logger.Errorw("invalid update task command", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	updated, ok := uc.tasks.Update(ctx, cmd.TaskID, update)
	if !ok {
		return nil, errors.NewNotFoundError("task not found")
	}

	uc.logger.Infow("task updated successfully", "task_id", updated.ID, "progress", updated.Progress)

	return &UpdateTaskResult{Task: updated}, nil
}

func (uc *UpdateTaskUseCase) buildUpdate(cmd UpdateTaskCommand) (task.Update, error) {
	var u task.Update

	u.Title = cmd.Title
	u.Tags = cmd.Tags
	u.Project = cmd.Project
	u.Subtasks = cmd.Subtasks

	if cmd.Status != nil {
		status := task.Status(*cmd.Status)
		if !status.IsValid() {
			return task.Update{}, errors.NewValidationError("invalid status")
		}
		u.Status = &status
	}

	if cmd.Priority != nil {
		priority := common.Priority(*cmd.Priority)
		if !priority.IsValid() {
			return task.Update{}, errors.NewValidationError("invalid priority")
		}
		u.Priority = &priority
	}

	if cmd.ClearDueDate {
		var none *time.Time
		u.DueDate = &none
	} else if cmd.DueDate != nil {
		due := cmd.DueDate
		u.DueDate = &due
	}

	return u, nil
}
