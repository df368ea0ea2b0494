package client

import (
	"context"
	"net/url"
)

// LeadService handles lead pipeline operations.
type LeadService struct {
	c *Client
}

// Create creates a lead in the prospect stage.
func (s *LeadService) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	var lead Lead
	if err := s.c.post(ctx, "/api/v1/leads", req, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns the authenticated agent's leads with pipeline aggregates.
func (s *LeadService) List(ctx context.Context) (*AgentLeads, error) {
	var resp AgentLeads
	if err := s.c.get(ctx, "/api/v1/leads", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateStage moves a lead to a new pipeline stage.
func (s *LeadService) UpdateStage(ctx context.Context, id, stage string) (*Lead, error) {
	body := map[string]string{"stage": stage}
	var lead Lead
	if err := s.c.put(ctx, "/api/v1/leads/"+url.PathEscape(id)+"/stage", body, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Score returns the composite priority score for a lead.
func (s *LeadService) Score(ctx context.Context, id string) (*LeadScore, error) {
	var score LeadScore
	if err := s.c.get(ctx, "/api/v1/leads/"+url.PathEscape(id)+"/score", nil, &score); err != nil {
		return nil, err
	}
	return &score, nil
}
