package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/coverdesk/coverdesk/internal/api"
	"github.com/coverdesk/coverdesk/internal/models"
)

func TestWorkflowTrigger_Completed(t *testing.T) {
	t.Parallel()

	repo := &mockWorkflowRepo{
		triggerFn: func(_ context.Context, actor models.Actor, workflowID string, req models.TriggerRequest) (*models.TriggerResult, error) {
			if actor.ID != testAgentID {
				t.Errorf("expected actor %q, got %q", testAgentID, actor.ID)
			}
			if workflowID != "CLAIM_APPROVAL" {
				t.Errorf("unexpected workflow id %q", workflowID)
			}
			return &models.TriggerResult{
				ExecutionID: "WFX-1",
				Status:      models.ExecutionCompleted,
				Result:      &models.ExecutionResult{Success: true, Results: []models.ActionResult{{Type: models.ActionSendEmail, Success: true}}},
			}, nil
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/workflows/:id/trigger", h.Trigger)

	body := `{"entity_type":"claim","entity_id":"CLM-9","data":{"claim_amount":40000,"claim_type":"cashless"}}`
	w := doRequest(r, http.MethodPost, "/workflows/CLAIM_APPROVAL/trigger", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.TriggerResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result.ExecutionID != "WFX-1" || result.Status != models.ExecutionCompleted {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestWorkflowTrigger_MissingEntityType(t *testing.T) {
	t.Parallel()

	h := api.NewWorkflowHandler(&mockWorkflowRepo{}, testLogger())
	r := newTestRouter()
	r.POST("/workflows/:id/trigger", h.Trigger)

	w := doRequest(r, http.MethodPost, "/workflows/CLAIM_APPROVAL/trigger", `{"entity_id":"CLM-9"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWorkflowTrigger_UnknownWorkflow(t *testing.T) {
	t.Parallel()

	repo := &mockWorkflowRepo{
		triggerFn: func(_ context.Context, _ models.Actor, _ string, _ models.TriggerRequest) (*models.TriggerResult, error) {
			return nil, models.ErrWorkflowNotFound
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/workflows/:id/trigger", h.Trigger)

	w := doRequest(r, http.MethodPost, "/workflows/NOPE/trigger", `{"entity_type":"claim","entity_id":"CLM-9"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkflowTrigger_InactiveReportedAsNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockWorkflowRepo{
		triggerFn: func(_ context.Context, _ models.Actor, _ string, _ models.TriggerRequest) (*models.TriggerResult, error) {
			return nil, models.ErrWorkflowInactive
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/workflows/:id/trigger", h.Trigger)

	w := doRequest(r, http.MethodPost, "/workflows/DISABLED/trigger", `{"entity_type":"claim","entity_id":"CLM-9"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkflowTrigger_ConditionsNotMatched(t *testing.T) {
	t.Parallel()

	repo := &mockWorkflowRepo{
		triggerFn: func(_ context.Context, _ models.Actor, _ string, _ models.TriggerRequest) (*models.TriggerResult, error) {
			return nil, models.ErrTriggerNotMatched
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/workflows/:id/trigger", h.Trigger)

	body := `{"entity_type":"claim","entity_id":"CLM-9","enforce_triggers":true,"data":{"claim_amount":80000}}`
	w := doRequest(r, http.MethodPost, "/workflows/CLAIM_APPROVAL/trigger", body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestWorkflowList_OK(t *testing.T) {
	t.Parallel()

	repo := &mockWorkflowRepo{
		listFn: func(_ context.Context) ([]models.Workflow, error) {
			return []models.Workflow{
				{WorkflowID: "CLAIM_APPROVAL", IsActive: true},
				{WorkflowID: "PAYMENT_REMINDER", IsActive: true},
			}, nil
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.GET("/workflows", h.List)

	w := doRequest(r, http.MethodGet, "/workflows", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Workflows []models.Workflow `json:"workflows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Workflows) != 2 {
		t.Errorf("expected 2 workflows, got %d", len(body.Workflows))
	}
}

func TestWorkflowGetExecution_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockWorkflowRepo{
		getExecutionFn: func(_ context.Context, _ string) (*models.WorkflowExecution, error) {
			return nil, models.ErrExecutionNotFound
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.GET("/executions/:id", h.GetExecution)

	w := doRequest(r, http.MethodGet, "/executions/WFX-gone", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkflowListExecutions_PassesLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	repo := &mockWorkflowRepo{
		listExecutionsFn: func(_ context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error) {
			gotLimit = limit
			return []models.WorkflowExecution{{ExecutionID: "WFX-1", WorkflowID: workflowID}}, nil
		},
	}

	h := api.NewWorkflowHandler(repo, testLogger())
	r := newTestRouter()
	r.GET("/workflows/:id/executions", h.ListExecutions)

	w := doRequest(r, http.MethodGet, "/workflows/CLAIM_APPROVAL/executions?limit=10", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotLimit != 10 {
		t.Errorf("expected limit 10, got %d", gotLimit)
	}
}
