package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coverdesk/coverdesk/internal/models"
)

// QuoteStore handles quote persistence.
type QuoteStore struct {
	Base
}

// NewQuoteStore creates a QuoteStore.
func NewQuoteStore(base Base) *QuoteStore {
	return &QuoteStore{Base: base}
}

// CreateQuote inserts a draft quote with a precomputed premium and returns it.
func (s *QuoteStore) CreateQuote(
	ctx context.Context, quoteID string, req models.GenerateQuoteRequest, premium float64, validUntil time.Time,
) (*models.Quote, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `
		INSERT INTO quotes (quote_id, agent_id, customer_id, policy_type, coverage, term, premium, status, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING quote_id, agent_id, customer_id, policy_type, coverage, term, premium, status, valid_until, created_at, updated_at`,
		quoteID, req.AgentID, req.CustomerID, req.PolicyType,
		req.Coverage, req.Term, premium, models.QuoteStatusDraft, validUntil,
	)

	var q models.Quote

	err := row.Scan(&q.QuoteID, &q.AgentID, &q.CustomerID, &q.PolicyType,
		&q.Coverage, &q.Term, &q.Premium, &q.Status, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created quote: %w", err)
	}

	s.notify("quotes", "insert", q.QuoteID)

	return &q, nil
}
