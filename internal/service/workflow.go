package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/domain"
	"github.com/coverdesk/coverdesk/internal/metrics"
	"github.com/coverdesk/coverdesk/internal/models"
)

// WorkflowStore is the data-access interface WorkflowService depends on.
type WorkflowStore interface {
	GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error)
	ListWorkflows(ctx context.Context) ([]models.Workflow, error)
	UpsertWorkflow(ctx context.Context, w models.Workflow) error
	CreateExecution(ctx context.Context, executionID, workflowID, entityType, entityID string, startedAt time.Time) error
	FinishExecution(ctx context.Context, executionID, status string, result *models.ExecutionResult, execError string) error
	GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error)
	ListExecutions(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error)
}

// Compile-time check: *WorkflowService must satisfy domain.WorkflowService.
var _ domain.WorkflowService = (*WorkflowService)(nil)

// WorkflowService is the rule-triggered action-execution engine. A trigger
// loads the workflow definition, creates an execution record, runs the
// actions sequentially with fail-fast semantics, persists the terminal state,
// and records one audit entry regardless of outcome.
type WorkflowService struct {
	store       WorkflowStore
	actions     ActionSet
	auditWorker AuditEnqueuer
	log         *logrus.Logger
	now         func() time.Time
}

// NewWorkflowService creates a WorkflowService. A nil action set gets the
// built-in defaults.
func NewWorkflowService(store WorkflowStore, actions ActionSet, auditWorker AuditEnqueuer, log *logrus.Logger) *WorkflowService {
	if actions == nil {
		actions = DefaultActions(log)
	}

	return &WorkflowService{
		store:       store,
		actions:     actions,
		auditWorker: auditWorker,
		log:         log,
		now:         time.Now,
	}
}

// GetWorkflow returns a workflow definition by ID (pass-through).
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error) {
	return s.store.GetWorkflow(ctx, workflowID)
}

// ListWorkflows returns all workflow definitions (pass-through).
func (s *WorkflowService) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	return s.store.ListWorkflows(ctx)
}

// GetExecution returns a single execution record (pass-through).
func (s *WorkflowService) GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error) {
	return s.store.GetExecution(ctx, executionID)
}

// ListExecutions returns execution records for a workflow (pass-through).
func (s *WorkflowService) ListExecutions(
	ctx context.Context, workflowID string, limit int,
) ([]models.WorkflowExecution, error) {
	return s.store.ListExecutions(ctx, workflowID, limit)
}

// Trigger runs a workflow against an entity. An unknown or inactive workflow
// fails before any execution record exists. Once the record is created, the
// engine always reaches a terminal status: action failures stop the sequence
// at the failing action (its result is still included) and mark the execution
// failed, with no rollback of side effects already applied.
func (s *WorkflowService) Trigger(
	ctx context.Context, actor models.Actor, workflowID string, req models.TriggerRequest,
) (*models.TriggerResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	workflow, err := s.store.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	if !workflow.IsActive {
		return nil, models.ErrWorkflowInactive
	}

	if req.EnforceTriggers && !workflow.Matches(req.Data) {
		return nil, models.ErrTriggerNotMatched
	}

	executionID := models.NewEntityID("WFX")

	if err := s.store.CreateExecution(ctx, executionID, workflowID, req.EntityType, req.EntityID, s.now()); err != nil {
		return nil, err
	}

	result := s.runActions(workflow, req)

	status := models.ExecutionCompleted
	if !result.Success {
		status = models.ExecutionFailed
	}

	if err := s.store.FinishExecution(ctx, executionID, status, result, result.Error); err != nil {
		return nil, err
	}

	metrics.WorkflowExecutions.WithLabelValues(workflowID, status).Inc()

	auditAsync(s.auditWorker, actor, "WORKFLOW_EXECUTED", "workflow", workflowID, map[string]any{
		"execution_id": executionID,
		"entity_type":  req.EntityType,
		"entity_id":    req.EntityID,
		"status":       status,
	})

	s.log.WithFields(logrus.Fields{
		"workflow_id":  workflowID,
		"execution_id": executionID,
		"status":       status,
	}).Info("workflow.trigger")

	return &models.TriggerResult{
		ExecutionID: executionID,
		Status:      status,
		Result:      result,
	}, nil
}

// runActions executes the workflow's actions in array order, stopping at the
// first failure. The failing action's result is the last element of Results.
func (s *WorkflowService) runActions(workflow *models.Workflow, req models.TriggerRequest) *models.ExecutionResult {
	result := &models.ExecutionResult{Success: true}

	for _, action := range workflow.Actions {
		ar := s.actions.execute(action, req.EntityType, req.EntityID, req.Data)
		result.Results = append(result.Results, ar)

		if !ar.Success {
			result.Success = false
			result.Error = ar.Error

			break
		}
	}

	return result
}
