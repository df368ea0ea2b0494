package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coverdesk/coverdesk/internal/models"
)

// WorkflowStore handles workflow definitions and execution records.
type WorkflowStore struct {
	Base
}

// NewWorkflowStore creates a WorkflowStore.
func NewWorkflowStore(base Base) *WorkflowStore {
	return &WorkflowStore{Base: base}
}

// GetWorkflow returns a workflow definition by its external ID.
func (s *WorkflowStore) GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx,
		"SELECT "+workflowColumns+" FROM workflows WHERE workflow_id = $1", workflowID)

	w, err := scanWorkflow(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrWorkflowNotFound
		}

		return nil, fmt.Errorf("getting workflow: %w", err)
	}

	return w, nil
}

// ListWorkflows returns all workflow definitions, newest first.
func (s *WorkflowStore) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx,
		"SELECT "+workflowColumns+" FROM workflows ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing workflows: %w", err)
	}
	defer rows.Close()

	workflows := make([]models.Workflow, 0, 8)

	for rows.Next() {
		w, err := scanWorkflow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning workflow row: %w", err)
		}

		workflows = append(workflows, *w)
	}

	return workflows, rows.Err()
}

// UpsertWorkflow inserts a workflow definition if the ID is new, otherwise
// leaves the stored definition alone. Used for idempotent catalog seeding.
func (s *WorkflowStore) UpsertWorkflow(ctx context.Context, w models.Workflow) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	triggersJSON, err := json.Marshal(w.Triggers)
	if err != nil {
		return fmt.Errorf("marshaling workflow triggers: %w", err)
	}

	actionsJSON, err := json.Marshal(w.Actions)
	if err != nil {
		return fmt.Errorf("marshaling workflow actions: %w", err)
	}

	_, err = s.Pool.Exec(ctx, `
		INSERT INTO workflows (workflow_id, name, type, triggers, actions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (workflow_id) DO NOTHING`,
		w.WorkflowID, w.Name, w.Type, triggersJSON, actionsJSON, w.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upserting workflow: %w", err)
	}

	return nil
}

// CreateExecution inserts a pending execution record.
func (s *WorkflowStore) CreateExecution(
	ctx context.Context, executionID, workflowID, entityType, entityID string, startedAt time.Time,
) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO workflow_executions (execution_id, workflow_id, entity_type, entity_id, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		executionID, workflowID, entityType, entityID, models.ExecutionPending, startedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting execution record: %w", err)
	}

	return nil
}

// FinishExecution moves an execution to its terminal status and persists the
// per-action results. Executions transition exactly once; there is no retry.
func (s *WorkflowStore) FinishExecution(
	ctx context.Context, executionID, status string, result *models.ExecutionResult, execError string,
) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling execution result: %w", err)
	}

	tag, err := s.Pool.Exec(ctx, `
		UPDATE workflow_executions
		SET status = $2, result = $3, error = $4, completed_at = NOW()
		WHERE execution_id = $1`,
		executionID, status, resultJSON, nullable(execError),
	)
	if err != nil {
		return fmt.Errorf("finishing execution: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrExecutionNotFound
	}

	s.notify("workflow_executions", "update", executionID)

	return nil
}

// GetExecution returns a single execution record by its external ID.
func (s *WorkflowStore) GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx,
		"SELECT "+executionColumns+" FROM workflow_executions WHERE execution_id = $1", executionID)

	e, err := scanExecution(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrExecutionNotFound
		}

		return nil, fmt.Errorf("getting execution: %w", err)
	}

	return e, nil
}

// ListExecutions returns execution records for a workflow, newest first.
func (s *WorkflowStore) ListExecutions(
	ctx context.Context, workflowID string, limit int,
) ([]models.WorkflowExecution, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.Pool.Query(ctx,
		"SELECT "+executionColumns+` FROM workflow_executions
		WHERE workflow_id = $1 ORDER BY started_at DESC LIMIT $2`,
		workflowID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing executions: %w", err)
	}
	defer rows.Close()

	executions := make([]models.WorkflowExecution, 0, 16)

	for rows.Next() {
		e, err := scanExecution(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning execution row: %w", err)
		}

		executions = append(executions, *e)
	}

	return executions, rows.Err()
}
