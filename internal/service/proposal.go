package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/domain"
	"github.com/coverdesk/coverdesk/internal/models"
)

// proposalValidity is how long a created proposal stays open.
const proposalValidity = 14 * 24 * time.Hour

// ProposalStore is the data-access interface ProposalService depends on.
type ProposalStore interface {
	CreateProposal(ctx context.Context, proposalID string, req models.CreateProposalRequest, totalAmount float64, validUntil time.Time) (*models.Proposal, error)
}

// Compile-time check: *ProposalService must satisfy domain.ProposalService.
var _ domain.ProposalService = (*ProposalService)(nil)

// ProposalService sums line items and persists draft proposals.
type ProposalService struct {
	store       ProposalStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
	now         func() time.Time
}

// NewProposalService creates a ProposalService.
func NewProposalService(store ProposalStore, auditWorker AuditEnqueuer, log *logrus.Logger) *ProposalService {
	return &ProposalService{store: store, auditWorker: auditWorker, log: log, now: time.Now}
}

// CreateProposal persists a draft proposal valid for 14 days, with the total
// computed as the sum of item totals, and records a CREATE_PROPOSAL audit entry.
func (s *ProposalService) CreateProposal(
	ctx context.Context, actor models.Actor, req models.CreateProposalRequest,
) (*models.Proposal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	validUntil := s.now().Add(proposalValidity)

	proposal, err := s.store.CreateProposal(ctx, models.NewEntityID("PROP"), req, req.TotalAmount(), validUntil)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "CREATE_PROPOSAL", "proposal", proposal.ProposalID, map[string]any{
		"customer_id":  proposal.CustomerID,
		"title":        proposal.Title,
		"total_amount": proposal.TotalAmount,
		"items":        len(proposal.Items),
	})

	return proposal, nil
}
