package client

import (
	"context"
)

// QuoteService handles quote generation.
type QuoteService struct {
	c *Client
}

// Generate computes a premium and creates a draft quote.
func (s *QuoteService) Generate(ctx context.Context, req *GenerateQuoteRequest) (*Quote, error) {
	var quote Quote
	if err := s.c.post(ctx, "/api/v1/quotes", req, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// ProposalService handles proposal creation.
type ProposalService struct {
	c *Client
}

// Create totals the line items and creates a draft proposal.
func (s *ProposalService) Create(ctx context.Context, req *CreateProposalRequest) (*Proposal, error) {
	var proposal Proposal
	if err := s.c.post(ctx, "/api/v1/proposals", req, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}
