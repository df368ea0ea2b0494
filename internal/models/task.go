package models

import "time"

// Task priorities. Closed enumeration.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task statuses. Closed enumeration. "Overdue" is derived, never stored.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// Task is a to-do item owned by an agent.
type Task struct {
	TaskID      string    `json:"task_id"`
	AgentID     string    `json:"agent_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Overdue reports whether the task is past due and not completed, as of now.
func (t *Task) Overdue(now time.Time) bool {
	return t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}

// TaskCounts holds per-status task counts for one agent.
type TaskCounts struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// AgentTasks is the aggregate returned for an agent's task view. Tasks are
// ordered by due date ascending; Overdue is derived at read time.
type AgentTasks struct {
	Tasks    []Task     `json:"tasks"`
	ByStatus TaskCounts `json:"by_status"`
	Overdue  int        `json:"overdue"`
}

// CreateTaskRequest is the payload for creating a task. New tasks always start
// with status todo.
type CreateTaskRequest struct {
	AgentID     string    `json:"agent_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority"`
}

// Validate checks required fields and defaults the priority to medium.
func (r *CreateTaskRequest) Validate() error {
	if r.AgentID == "" {
		return ErrMissingAgentID
	}

	if r.Title == "" {
		return ErrMissingTitle
	}

	if len(r.Title) > 512 {
		return ErrFieldTooLong("title", 512)
	}

	if r.Priority == "" {
		r.Priority = PriorityMedium
	}

	if !validPriorities[r.Priority] {
		return ErrInvalidEnum("priority", r.Priority)
	}

	if r.DueDate.IsZero() {
		return ErrInvalidEnum("due_date", "zero")
	}

	return nil
}
