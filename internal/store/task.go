package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coverdesk/coverdesk/internal/models"
)

// TaskStore handles agent task operations.
type TaskStore struct {
	Base
}

// NewTaskStore creates a TaskStore.
func NewTaskStore(base Base) *TaskStore {
	return &TaskStore{Base: base}
}

// CreateTask inserts a new task with status todo and returns it.
func (s *TaskStore) CreateTask(
	ctx context.Context, taskID string, req models.CreateTaskRequest,
) (*models.Task, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO tasks (task_id, agent_id, title, description, priority, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns

	row := s.Pool.QueryRow(ctx, query,
		taskID, req.AgentID, req.Title, nullable(req.Description),
		req.Priority, models.TaskStatusTodo, req.DueDate,
	)

	t, err := scanTask(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created task: %w", err)
	}

	s.notify("tasks", "insert", t.TaskID)

	return t, nil
}

// ListAgentTasks returns all tasks for an agent ordered by due date ascending.
// Status counts and the overdue count are derived in the service layer.
func (s *TaskStore) ListAgentTasks(ctx context.Context, agentID string) ([]models.Task, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE agent_id = $1 ORDER BY due_date ASC", agentID)
	if err != nil {
		return nil, fmt.Errorf("listing agent tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)

	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		tasks = append(tasks, *t)
	}

	return tasks, rows.Err()
}
