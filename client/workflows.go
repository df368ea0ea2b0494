package client

import (
	"context"
	"net/url"
	"strconv"
)

// WorkflowService handles workflow and execution operations.
type WorkflowService struct {
	c *Client
}

// List returns all stored workflows, active and inactive.
func (s *WorkflowService) List(ctx context.Context) ([]Workflow, error) {
	var resp struct {
		Workflows []Workflow `json:"workflows"`
	}
	if err := s.c.get(ctx, "/api/v1/workflows", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Workflows, nil
}

// Get returns a single workflow by ID.
func (s *WorkflowService) Get(ctx context.Context, id string) (*Workflow, error) {
	var wf Workflow
	if err := s.c.get(ctx, "/api/v1/workflows/"+url.PathEscape(id), nil, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// Trigger runs a workflow's actions against an entity and returns the
// recorded execution outcome.
func (s *WorkflowService) Trigger(ctx context.Context, id string, req *TriggerRequest) (*TriggerResult, error) {
	var result TriggerResult
	if err := s.c.post(ctx, "/api/v1/workflows/"+url.PathEscape(id)+"/trigger", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListExecutions returns the most recent executions of a workflow.
func (s *WorkflowService) ListExecutions(ctx context.Context, id string, limit int) ([]WorkflowExecution, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		Executions []WorkflowExecution `json:"executions"`
	}
	if err := s.c.get(ctx, "/api/v1/workflows/"+url.PathEscape(id)+"/executions", params, &resp); err != nil {
		return nil, err
	}
	return resp.Executions, nil
}

// GetExecution returns a single execution by ID.
func (s *WorkflowService) GetExecution(ctx context.Context, id string) (*WorkflowExecution, error) {
	var exec WorkflowExecution
	if err := s.c.get(ctx, "/api/v1/executions/"+url.PathEscape(id), nil, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}
