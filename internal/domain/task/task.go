// Package task models board tasks with subtask checklists. The checklist
// counters and the progress percentage are derived from the subtasks and are
// always recomputed together so they cannot disagree.
package task

import (
	"fmt"
	"math"
	"time"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/user"
)

// Status is the board column a task sits in.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Checklist summarizes subtask completion. Completed never exceeds Total.
type Checklist struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type Subtask struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Status      Status          `json:"status"`
	Priority    common.Priority `json:"priority"`
	Tags        []string        `json:"tags"`
	Assignees   []user.User     `json:"assignees"`
	Progress    int             `json:"progress"`
	Checklist   Checklist       `json:"checklist"`
	Comments    int             `json:"comments"`
	Attachments int             `json:"attachments"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Project     string          `json:"project"`
	Subtasks    []Subtask       `json:"subtasks,omitempty"`
}

func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID is required")
	}
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	if t.Checklist.Completed > t.Checklist.Total {
		return fmt.Errorf("checklist completed cannot exceed total")
	}
	return nil
}

// RecomputeProgress rebuilds the checklist counters and progress percentage
// from the subtasks. Progress is round(100*completed/total), 0 for an empty
// checklist. Every subtask mutation must go through this.
func (t *Task) RecomputeProgress() {
	total := len(t.Subtasks)
	completed := 0
	for _, st := range t.Subtasks {
		if st.Completed {
			completed++
		}
	}
	t.Checklist = Checklist{Total: total, Completed: completed}
	if total == 0 {
		t.Progress = 0
		return
	}
	t.Progress = int(math.Round(100 * float64(completed) / float64(total)))
}

// ToggleSubtask flips a subtask's completed flag and recomputes the derived
// counters. Returns false when the subtask ID is unknown.
func (t *Task) ToggleSubtask(subtaskID string) bool {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			t.RecomputeProgress()
			return true
		}
	}
	return false
}

// Update is a shallow partial update; nil fields are left unchanged.
// Subtasks replace the whole slice and trigger a progress recompute.
type Update struct {
	Title       *string
	Status      *Status
	Priority    *common.Priority
	Tags        []string
	Assignees   []user.User
	Comments    *int
	Attachments *int
	DueDate     **time.Time
	Project     *string
	Subtasks    []Subtask
}

// Apply merges the update into the task. A non-nil Subtasks slice replaces
// the checklist and recomputes Checklist and Progress in the same step.
func (t *Task) Apply(u Update) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Tags != nil {
		t.Tags = u.Tags
	}
	if u.Assignees != nil {
		t.Assignees = u.Assignees
	}
	if u.Comments != nil {
		t.Comments = *u.Comments
	}
	if u.Attachments != nil {
		t.Attachments = *u.Attachments
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Project != nil {
		t.Project = *u.Project
	}
	if u.Subtasks != nil {
		t.Subtasks = u.Subtasks
		t.RecomputeProgress()
	}
}
