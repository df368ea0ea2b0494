package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coverdesk/coverdesk/internal/models"
)

// ProposalStore handles proposal persistence. Items are stored as a jsonb
// array on the proposal row.
type ProposalStore struct {
	Base
}

// NewProposalStore creates a ProposalStore.
func NewProposalStore(base Base) *ProposalStore {
	return &ProposalStore{Base: base}
}

// CreateProposal inserts a draft proposal with a precomputed total and returns it.
func (s *ProposalStore) CreateProposal(
	ctx context.Context, proposalID string, req models.CreateProposalRequest, totalAmount float64, validUntil time.Time,
) (*models.Proposal, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("marshaling proposal items: %w", err)
	}

	row := s.Pool.QueryRow(ctx, `
		INSERT INTO proposals (proposal_id, agent_id, customer_id, title, items, total_amount, status, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING proposal_id, agent_id, customer_id, title, items, total_amount, status, valid_until, created_at, updated_at`,
		proposalID, req.AgentID, req.CustomerID, req.Title,
		itemsJSON, totalAmount, models.ProposalStatusDraft, validUntil,
	)

	var p models.Proposal
	var items []byte

	err = row.Scan(&p.ProposalID, &p.AgentID, &p.CustomerID, &p.Title,
		&items, &p.TotalAmount, &p.Status, &p.ValidUntil, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created proposal: %w", err)
	}

	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, fmt.Errorf("unmarshalling proposal items: %w", err)
	}

	s.notify("proposals", "insert", p.ProposalID)

	return &p, nil
}
