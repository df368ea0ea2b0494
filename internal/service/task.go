package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/domain"
	"github.com/coverdesk/coverdesk/internal/models"
)

// TaskStore is the data-access interface TaskService depends on.
type TaskStore interface {
	CreateTask(ctx context.Context, taskID string, req models.CreateTaskRequest) (*models.Task, error)
	ListAgentTasks(ctx context.Context, agentID string) ([]models.Task, error)
}

// Compile-time check: *TaskService must satisfy domain.TaskService.
var _ domain.TaskService = (*TaskService)(nil)

// TaskService wraps TaskStore with validation, audit logging, and derived
// status counts.
type TaskService struct {
	store       TaskStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
	now         func() time.Time
}

// NewTaskService creates a TaskService.
func NewTaskService(store TaskStore, auditWorker AuditEnqueuer, log *logrus.Logger) *TaskService {
	return &TaskService{store: store, auditWorker: auditWorker, log: log, now: time.Now}
}

// CreateTask creates a task with status todo and records a CREATE_TASK audit entry.
func (s *TaskService) CreateTask(
	ctx context.Context, actor models.Actor, req models.CreateTaskRequest,
) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task, err := s.store.CreateTask(ctx, models.NewEntityID("TASK"), req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "CREATE_TASK", "task", task.TaskID, map[string]any{
		"title":    task.Title,
		"priority": task.Priority,
		"due_date": task.DueDate,
	})

	return task, nil
}

// GetAgentTasks returns an agent's tasks ordered by due date, with per-status
// counts and the overdue count derived at read time.
func (s *TaskService) GetAgentTasks(ctx context.Context, agentID string) (*models.AgentTasks, error) {
	tasks, err := s.store.ListAgentTasks(ctx, agentID)
	if err != nil {
		return nil, err
	}

	result := &models.AgentTasks{Tasks: tasks}
	now := s.now()

	for i := range tasks {
		switch tasks[i].Status {
		case models.TaskStatusTodo:
			result.ByStatus.Todo++
		case models.TaskStatusInProgress:
			result.ByStatus.InProgress++
		case models.TaskStatusCompleted:
			result.ByStatus.Completed++
		}

		if tasks[i].Overdue(now) {
			result.Overdue++
		}
	}

	return result, nil
}
