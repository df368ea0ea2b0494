package service

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/domain"
	"github.com/coverdesk/coverdesk/internal/models"
)

// quoteBaseRate is the annual premium rate as a percentage of coverage.
const quoteBaseRate = 0.5

// quoteValidity is how long a generated quote stays open.
const quoteValidity = 30 * 24 * time.Hour

// QuoteStore is the data-access interface QuoteService depends on.
type QuoteStore interface {
	CreateQuote(ctx context.Context, quoteID string, req models.GenerateQuoteRequest, premium float64, validUntil time.Time) (*models.Quote, error)
}

// Compile-time check: *QuoteService must satisfy domain.QuoteService.
var _ domain.QuoteService = (*QuoteService)(nil)

// QuoteService computes premiums and persists draft quotes. The premium is
// always computed server-side, never accepted from the caller.
type QuoteService struct {
	store       QuoteStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
	now         func() time.Time
}

// NewQuoteService creates a QuoteService.
func NewQuoteService(store QuoteStore, auditWorker AuditEnqueuer, log *logrus.Logger) *QuoteService {
	return &QuoteService{store: store, auditWorker: auditWorker, log: log, now: time.Now}
}

// GenerateQuote computes the premium, persists a draft quote valid for 30
// days, and records a GENERATE_QUOTE audit entry.
func (s *QuoteService) GenerateQuote(
	ctx context.Context, actor models.Actor, req models.GenerateQuoteRequest,
) (*models.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	premium := Premium(req.Coverage, req.Term)
	validUntil := s.now().Add(quoteValidity)

	quote, err := s.store.CreateQuote(ctx, models.NewEntityID("QUOTE"), req, premium, validUntil)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "GENERATE_QUOTE", "quote", quote.QuoteID, map[string]any{
		"customer_id": quote.CustomerID,
		"policy_type": quote.PolicyType,
		"premium":     quote.Premium,
	})

	return quote, nil
}

// Premium computes the annual-rate premium for a coverage amount over a term
// in years, rounded to cents.
func Premium(coverage float64, term int) float64 {
	premium := coverage * quoteBaseRate * float64(term) / 100

	return math.Round(premium*100) / 100
}
