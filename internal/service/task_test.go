package service

import (
	"context"
	"testing"
	"time"

	"github.com/coverdesk/coverdesk/internal/models"
)

func TestGetAgentTasks_CountsAndOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	store := &mockTaskStore{}
	store.listAgentTasks = func(_ context.Context, _ string) ([]models.Task, error) {
		return []models.Task{
			{TaskID: "TASK-1", Status: models.TaskStatusTodo, DueDate: now.Add(-24 * time.Hour)},
			{TaskID: "TASK-2", Status: models.TaskStatusInProgress, DueDate: now.Add(-2 * time.Hour)},
			{TaskID: "TASK-3", Status: models.TaskStatusCompleted, DueDate: now.Add(-48 * time.Hour)},
			{TaskID: "TASK-4", Status: models.TaskStatusTodo, DueDate: now.Add(24 * time.Hour)},
			{TaskID: "TASK-5", Status: models.TaskStatusCancelled, DueDate: now.Add(24 * time.Hour)},
		}, nil
	}

	svc := NewTaskService(store, nil, testLogger())
	svc.now = func() time.Time { return now }

	agg, err := svc.GetAgentTasks(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("GetAgentTasks: %v", err)
	}

	if agg.ByStatus.Todo != 2 {
		t.Errorf("ByStatus.Todo = %d, want 2", agg.ByStatus.Todo)
	}
	if agg.ByStatus.InProgress != 1 {
		t.Errorf("ByStatus.InProgress = %d, want 1", agg.ByStatus.InProgress)
	}
	if agg.ByStatus.Completed != 1 {
		t.Errorf("ByStatus.Completed = %d, want 1", agg.ByStatus.Completed)
	}
	// Past-due todo and in_progress count as overdue; completed does not.
	if agg.Overdue != 2 {
		t.Errorf("Overdue = %d, want 2", agg.Overdue)
	}
}

func TestCreateTask_DefaultsPriority(t *testing.T) {
	store := &mockTaskStore{}
	var created models.CreateTaskRequest
	store.createTask = func(_ context.Context, taskID string, req models.CreateTaskRequest) (*models.Task, error) {
		created = req
		return &models.Task{TaskID: taskID, Title: req.Title, Priority: req.Priority, Status: models.TaskStatusTodo}, nil
	}
	enq := &mockEnqueuer{}

	svc := NewTaskService(store, enq, testLogger())

	task, err := svc.CreateTask(context.Background(), actorFor("agent-1"), models.CreateTaskRequest{
		AgentID: "agent-1",
		Title:   "Call customer about renewal",
		DueDate: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if created.Priority != models.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", created.Priority)
	}
	if task.Status != models.TaskStatusTodo {
		t.Errorf("Status = %q, want todo", task.Status)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 || jobs[0].Action != "CREATE_TASK" {
		t.Fatalf("audit jobs = %+v, want one CREATE_TASK", jobs)
	}
}
