package services

import (
	"context"
	"errors"

	"github.com/akovalev/go-task-tracker/internal/models"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("task title is empty")
	ErrInvalidPriority   = errors.New("invalid task priority")
	ErrNoIncompleteTasks = errors.New("no incomplete tasks")
)

type TaskService interface {
	// CreateTask persists a new task with completed=false and
	// priority=none and returns it with the assigned id.
	//
	// It returns ErrEmptyTitle if the title is empty or
	// whitespace-only after trimming.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetTasks returns every task ordered by id ascending.
	// An empty store yields an empty slice, not an error.
	GetTasks(ctx context.Context) ([]models.Task, error)

	// GetTaskByID returns ErrTaskNotFound if no task has the given id.
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)

	// CompleteTask marks the task completed. Completing an
	// already-completed task is a no-op success.
	//
	// It returns ErrTaskNotFound if no task has the given id.
	CompleteTask(ctx context.Context, id int64) error

	// DeleteTask permanently removes the task. Remaining ids are
	// never renumbered or reused.
	//
	// It returns ErrTaskNotFound if no task has the given id.
	DeleteTask(ctx context.Context, id int64) error

	// SetTaskPriority returns ErrInvalidPriority for an unrecognized
	// priority or ErrTaskNotFound if no task has the given id.
	SetTaskPriority(ctx context.Context, id int64, priority models.Priority) error

	// UpdateTask changes the title and/or description; nil fields are
	// left unchanged. A non-nil title is validated like CreateTask.
	//
	// It returns ErrTaskNotFound if no task has the given id.
	UpdateTask(ctx context.Context, id int64, params UpdateTaskParams) error

	// PickRandomIncomplete selects uniformly at random among tasks
	// with completed=false. Selection is memoryless: consecutive
	// calls may return the same task.
	//
	// It returns ErrNoIncompleteTasks when every task is completed
	// or the store is empty.
	PickRandomIncomplete(ctx context.Context) (*models.Task, error)

	// Stats aggregates current rows without mutating anything.
	Stats(ctx context.Context) (*TaskStats, error)

	// SearchTasksByPriority returns exact matches ordered by id
	// ascending, possibly empty.
	//
	// It returns ErrInvalidPriority for an unrecognized priority.
	SearchTasksByPriority(ctx context.Context, priority models.Priority) ([]models.Task, error)
}

type CreateTaskParams struct {
	Title       string
	Description string
}

type UpdateTaskParams struct {
	Title       *string
	Description *string
}

// TaskStats always satisfies Total == Completed + Pending and
// sum over ByPriority == Total.
type TaskStats struct {
	Total      int
	Completed  int
	Pending    int
	ByPriority map[models.Priority]int
}
