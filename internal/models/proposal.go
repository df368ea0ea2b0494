package models

import (
	"fmt"
	"time"
)

// Proposal statuses. Closed enumeration.
const (
	ProposalStatusDraft    = "draft"
	ProposalStatusSent     = "sent"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

// ProposalItem is one line item of a proposal.
type ProposalItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Proposal is a multi-line offer built by an agent for a customer.
type Proposal struct {
	ProposalID  string         `json:"proposal_id"`
	AgentID     string         `json:"agent_id"`
	CustomerID  string         `json:"customer_id"`
	Title       string         `json:"title"`
	Items       []ProposalItem `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	Status      string         `json:"status"`
	ValidUntil  time.Time      `json:"valid_until"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateProposalRequest is the payload for creating a proposal. The total is
// computed server-side as the sum of item totals.
type CreateProposalRequest struct {
	AgentID    string         `json:"agent_id"`
	CustomerID string         `json:"customer_id"`
	Title      string         `json:"title"`
	Items      []ProposalItem `json:"items"`
}

// Validate checks required CreateProposalRequest fields.
func (r *CreateProposalRequest) Validate() error {
	if r.AgentID == "" {
		return ErrMissingAgentID
	}

	if r.Title == "" {
		return ErrMissingTitle
	}

	if len(r.Items) == 0 {
		return fmt.Errorf("items must not be empty")
	}

	for i, item := range r.Items {
		if item.Description == "" {
			return fmt.Errorf("items[%d]: description is required", i)
		}
	}

	return nil
}

// TotalAmount sums the item totals.
func (r *CreateProposalRequest) TotalAmount() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.Total
	}

	return sum
}
