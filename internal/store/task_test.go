package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/coverdesk/coverdesk/internal/models"
	"github.com/coverdesk/coverdesk/internal/store"
)

func TestCreateTaskDefaults(t *testing.T) {
	base, agentID := setupTestBase(t)
	ts := store.NewTaskStore(base)
	ctx := context.Background()

	due := time.Now().Add(48 * time.Hour).Truncate(time.Second)

	task, err := ts.CreateTask(ctx, models.NewEntityID("TASK"), models.CreateTaskRequest{
		AgentID:  agentID,
		Title:    "Follow up on renewal",
		Priority: models.PriorityHigh,
		DueDate:  due,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Status != models.TaskStatusTodo {
		t.Errorf("Status = %q, want todo", task.Status)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("Priority = %q, want high", task.Priority)
	}
	if task.Description != "" {
		t.Errorf("Description = %q, want empty", task.Description)
	}
}

func TestListAgentTasksOrder(t *testing.T) {
	base, agentID := setupTestBase(t)
	ts := store.NewTaskStore(base)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)

	// Insert out of due-date order.
	for _, offset := range []time.Duration{72 * time.Hour, 24 * time.Hour, 48 * time.Hour} {
		_, err := ts.CreateTask(ctx, models.NewEntityID("TASK"), models.CreateTaskRequest{
			AgentID:  agentID,
			Title:    "Task due in " + offset.String(),
			Priority: models.PriorityMedium,
			DueDate:  now.Add(offset),
		})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	tasks, err := ts.ListAgentTasks(ctx, agentID)
	if err != nil {
		t.Fatalf("ListAgentTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("ListAgentTasks returned %d, want 3", len(tasks))
	}

	for i := 1; i < len(tasks); i++ {
		if tasks[i].DueDate.Before(tasks[i-1].DueDate) {
			t.Errorf("tasks not ordered by due date: %v before %v", tasks[i].DueDate, tasks[i-1].DueDate)
		}
	}
}
