package models

import (
	"fmt"
	"time"
)

// Quote statuses. Closed enumeration.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// Quote is a premium estimate generated for a customer.
type Quote struct {
	QuoteID    string    `json:"quote_id"`
	AgentID    string    `json:"agent_id"`
	CustomerID string    `json:"customer_id"`
	PolicyType string    `json:"policy_type"`
	Coverage   float64   `json:"coverage"`
	Term       int       `json:"term"`
	Premium    float64   `json:"premium"`
	Status     string    `json:"status"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GenerateQuoteRequest is the payload for generating a quote. The premium is
// computed server-side, never supplied by the caller.
type GenerateQuoteRequest struct {
	AgentID    string  `json:"agent_id"`
	CustomerID string  `json:"customer_id"`
	PolicyType string  `json:"policy_type"`
	Coverage   float64 `json:"coverage"`
	Term       int     `json:"term"`
}

// Validate checks required GenerateQuoteRequest fields.
func (r *GenerateQuoteRequest) Validate() error {
	if r.AgentID == "" {
		return ErrMissingAgentID
	}

	if r.CustomerID == "" {
		return fmt.Errorf("customer_id is required")
	}

	if r.Coverage <= 0 {
		return fmt.Errorf("coverage must be positive")
	}

	if r.Term <= 0 {
		return fmt.Errorf("term must be positive")
	}

	return nil
}
