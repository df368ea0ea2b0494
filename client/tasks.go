package client

import (
	"context"
)

// TaskService handles agent task operations.
type TaskService struct {
	c *Client
}

// Create creates a task in the todo status.
func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	var task Task
	if err := s.c.post(ctx, "/api/v1/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the authenticated agent's tasks with status counts.
func (s *TaskService) List(ctx context.Context) (*AgentTasks, error) {
	var resp AgentTasks
	if err := s.c.get(ctx, "/api/v1/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
