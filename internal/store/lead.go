package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coverdesk/coverdesk/internal/models"
)

// LeadStore handles sales-pipeline lead operations.
type LeadStore struct {
	Base
}

// NewLeadStore creates a LeadStore.
func NewLeadStore(base Base) *LeadStore {
	return &LeadStore{Base: base}
}

// CreateLead inserts a new lead at the prospect stage and returns it.
func (s *LeadStore) CreateLead(
	ctx context.Context, leadID string, req models.CreateLeadRequest,
) (*models.Lead, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO leads (lead_id, agent_id, customer_name, email, phone, stage, value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leadColumns

	row := s.Pool.QueryRow(ctx, query,
		leadID, req.AgentID, req.CustomerName,
		nullable(req.Email), nullable(req.Phone),
		models.StageProspect, req.Value,
	)

	l, err := scanLead(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created lead: %w", err)
	}

	s.notify("leads", "insert", l.LeadID)

	return l, nil
}

// GetLead returns a single lead by its external ID.
func (s *LeadStore) GetLead(ctx context.Context, leadID string) (*models.Lead, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+leadColumns+" FROM leads WHERE lead_id = $1", leadID)

	l, err := scanLead(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrLeadNotFound
		}

		return nil, fmt.Errorf("getting lead: %w", err)
	}

	return l, nil
}

// UpdateLeadStage overwrites the lead's stage unconditionally. Any stage may
// follow any stage; funnel order is not enforced.
func (s *LeadStore) UpdateLeadStage(ctx context.Context, leadID, stage string) (*models.Lead, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `
		UPDATE leads SET stage = $2, updated_at = NOW()
		WHERE lead_id = $1
		RETURNING `+leadColumns,
		leadID, stage,
	)

	l, err := scanLead(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrLeadNotFound
		}

		return nil, fmt.Errorf("updating lead stage: %w", err)
	}

	s.notify("leads", "update", leadID)

	return l, nil
}

// ListAgentLeads returns all leads for an agent, newest first.
// Pipeline aggregation happens in the service layer on top of this set.
func (s *LeadStore) ListAgentLeads(ctx context.Context, agentID string) ([]models.Lead, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx,
		"SELECT "+leadColumns+" FROM leads WHERE agent_id = $1 ORDER BY created_at DESC", agentID)
	if err != nil {
		return nil, fmt.Errorf("listing agent leads: %w", err)
	}
	defer rows.Close()

	leads := make([]models.Lead, 0, 16)

	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning lead row: %w", err)
		}

		leads = append(leads, *l)
	}

	return leads, rows.Err()
}
