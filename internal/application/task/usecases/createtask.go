package usecases

import (
	"context"
	"time"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/task"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

type CreateTaskCommand struct {
	Title    string
	Status   string
	Priority string
	Tags     []string
	Project  string
	DueDate  *time.Time
	Subtasks []string
}

type CreateTaskResult struct {
	Task task.Task
}

type CreateTaskUseCase struct {
	tasks  TaskStore
	logger logger.Interface
}

func NewCreateTaskUseCase(tasks TaskStore, logger logger.Interface) *CreateTaskUseCase {
	return &CreateTaskUseCase{tasks: tasks, logger: logger}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case", "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create task command", "error", err)
		return nil, err
	}

	status := task.Status(cmd.Status)
	if cmd.Status == "" {
		status = task.StatusTodo
	}
	priority := common.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = common.PriorityMedium
	}

	t := task.Task{
		ID:       id.NewTaskID(),
		Title:    cmd.Title,
		Status:   status,
		Priority: priority,
		Tags:     cmd.Tags,
		Project:  cmd.Project,
		DueDate:  cmd.DueDate,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	for _, title := range cmd.Subtasks {
		t.Subtasks = append(t.Subtasks, task.Subtask{
			ID:    id.NewSubtaskID(),
			Title: title,
		})
	}
	t.RecomputeProgress()

	if err := t.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	uc.tasks.Add(ctx, t)

	uc.logger.Infow("task created successfully", "task_id", t.ID, "subtasks", len(t.Subtasks))

	return &CreateTaskResult{Task: t}, nil
}

func (uc *CreateTaskUseCase) validateCommand(cmd CreateTaskCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if cmd.Status != "" && !task.Status(cmd.Status).IsValid() {
		return errors.NewValidationError("invalid status")
	}
	if cmd.Priority != "" && !common.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
