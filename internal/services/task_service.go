package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akovalev/go-task-tracker/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     *sql.DB
}

func NewTaskService(
	logger zerolog.Logger,
	db *sql.DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &models.Task{
		Title:       title,
		Description: params.Description,
		Completed:   false,
		Priority:    models.PriorityNone,
	}

	const insertTaskQuery = `
INSERT INTO tasks (title, description, completed, priority)
VALUES (?, ?, 0, ?)
`
	res, err := s.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.Title,
		task.Description,
		string(task.Priority),
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, fmt.Errorf("insert task: %w", err)
	}

	task.ID, err = res.LastInsertId()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to read inserted task id")
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context) ([]models.Task, error) {
	const selectTasksQuery = `
SELECT id, title, description, completed, priority
FROM tasks
ORDER BY id ASC
`
	rows, err := s.db.QueryContext(ctx, selectTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	const selectTaskQuery = `
SELECT id, title, description, completed, priority
FROM tasks
WHERE id = ?
`
	var task models.Task
	err := s.db.QueryRowContext(ctx, selectTaskQuery, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.Priority,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to select task")
		return nil, fmt.Errorf("select task: %w", err)
	}

	return &task, nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, id int64) error {
	const completeTaskQuery = `
UPDATE tasks SET completed = 1 WHERE id = ?
`
	res, err := s.db.ExecContext(ctx, completeTaskQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to complete task")
		return fmt.Errorf("complete task: %w", err)
	}
	if err := requireRowMatched(res); err != nil {
		return err
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("completed task")
	return nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks WHERE id = ?
`
	res, err := s.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return fmt.Errorf("delete task: %w", err)
	}
	if err := requireRowMatched(res); err != nil {
		return err
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) SetTaskPriority(ctx context.Context, id int64, priority models.Priority) error {
	if !validPriority(priority) {
		return ErrInvalidPriority
	}

	const setPriorityQuery = `
UPDATE tasks SET priority = ? WHERE id = ?
`
	res, err := s.db.ExecContext(ctx, setPriorityQuery, string(priority), id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to set task priority")
		return fmt.Errorf("set task priority: %w", err)
	}
	if err := requireRowMatched(res); err != nil {
		return err
	}

	s.logger.Info().
		Int64("task_id", id).
		Str("priority", string(priority)).
		Msg("set task priority")
	return nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, params UpdateTaskParams) error {
	if params.Title != nil {
		trimmed := strings.TrimSpace(*params.Title)
		if trimmed == "" {
			return ErrEmptyTitle
		}
		params.Title = &trimmed
	}

	// NULL arguments fall through COALESCE, leaving the column as is.
	const updateTaskQuery = `
UPDATE tasks
SET title       = COALESCE(?, title),
    description = COALESCE(?, description)
WHERE id = ?
`
	res, err := s.db.ExecContext(ctx, updateTaskQuery, params.Title, params.Description, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to update task")
		return fmt.Errorf("update task: %w", err)
	}
	if err := requireRowMatched(res); err != nil {
		return err
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("updated task")
	return nil
}

func (s *taskServiceImpl) PickRandomIncomplete(ctx context.Context) (*models.Task, error) {
	const selectIncompleteQuery = `
SELECT id, title, description, completed, priority
FROM tasks
WHERE completed = 0
ORDER BY id ASC
`
	rows, err := s.db.QueryContext(ctx, selectIncompleteQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select incomplete tasks")
		return nil, fmt.Errorf("select incomplete tasks: %w", err)
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoIncompleteTasks
	}

	task := tasks[rand.Intn(len(tasks))]
	s.logger.Debug().
		Int64("task_id", task.ID).
		Int("eligible", len(tasks)).
		Msg("picked random incomplete task")
	return &task, nil
}

func (s *taskServiceImpl) Stats(ctx context.Context) (*TaskStats, error) {
	const countsQuery = `
SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM tasks
`
	stats := &TaskStats{
		ByPriority: map[models.Priority]int{
			models.PriorityNone:   0,
			models.PriorityEasy:   0,
			models.PriorityMedium: 0,
			models.PriorityHard:   0,
		},
	}
	err := s.db.QueryRowContext(ctx, countsQuery).Scan(&stats.Total, &stats.Completed)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to count tasks")
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	stats.Pending = stats.Total - stats.Completed

	const priorityCountsQuery = `
SELECT priority, COUNT(*) FROM tasks GROUP BY priority
`
	rows, err := s.db.QueryContext(ctx, priorityCountsQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to count tasks by priority")
		return nil, fmt.Errorf("count tasks by priority: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			priority models.Priority
			count    int
		)
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, fmt.Errorf("scan priority count: %w", err)
		}
		stats.ByPriority[priority] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate priority counts: %w", err)
	}

	return stats, nil
}

func (s *taskServiceImpl) SearchTasksByPriority(ctx context.Context, priority models.Priority) ([]models.Task, error) {
	if !validPriority(priority) {
		return nil, ErrInvalidPriority
	}

	const searchByPriorityQuery = `
SELECT id, title, description, completed, priority
FROM tasks
WHERE priority = ?
ORDER BY id ASC
`
	rows, err := s.db.QueryContext(ctx, searchByPriorityQuery, string(priority))
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("priority", string(priority)).
			Msg("failed to search tasks by priority")
		return nil, fmt.Errorf("search tasks by priority: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func validPriority(p models.Priority) bool {
	switch p {
	case models.PriorityNone, models.PriorityEasy, models.PriorityMedium, models.PriorityHard:
		return true
	default:
		return false
	}
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.Priority,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// requireRowMatched turns a zero-row write into ErrTaskNotFound.
func requireRowMatched(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
