package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/domain"
	"github.com/coverdesk/coverdesk/internal/models"
)

// LeadStore is the data-access interface LeadService depends on.
type LeadStore interface {
	CreateLead(ctx context.Context, leadID string, req models.CreateLeadRequest) (*models.Lead, error)
	GetLead(ctx context.Context, leadID string) (*models.Lead, error)
	UpdateLeadStage(ctx context.Context, leadID, stage string) (*models.Lead, error)
	ListAgentLeads(ctx context.Context, agentID string) ([]models.Lead, error)
}

// Compile-time check: *LeadService must satisfy domain.LeadService.
var _ domain.LeadService = (*LeadService)(nil)

// LeadService wraps LeadStore with validation, audit logging, and scoring.
type LeadService struct {
	store       LeadStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
	now         func() time.Time
}

// NewLeadService creates a LeadService.
func NewLeadService(store LeadStore, auditWorker AuditEnqueuer, log *logrus.Logger) *LeadService {
	return &LeadService{store: store, auditWorker: auditWorker, log: log, now: time.Now}
}

// CreateLead creates a lead at the prospect stage and records a CREATE_LEAD
// audit entry.
func (s *LeadService) CreateLead(
	ctx context.Context, actor models.Actor, req models.CreateLeadRequest,
) (*models.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead, err := s.store.CreateLead(ctx, models.NewEntityID("LEAD"), req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "CREATE_LEAD", "lead", lead.LeadID, map[string]any{
		"customer_name": lead.CustomerName,
		"value":         lead.Value,
	})

	return lead, nil
}

// UpdateLeadStage moves a lead to a new stage and records an
// UPDATE_LEAD_STAGE audit entry. Any stage may follow any stage.
func (s *LeadService) UpdateLeadStage(
	ctx context.Context, actor models.Actor, leadID string, req models.UpdateLeadStageRequest,
) (*models.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead, err := s.store.UpdateLeadStage(ctx, leadID, req.Stage)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "UPDATE_LEAD_STAGE", "lead", leadID, map[string]any{
		"stage": lead.Stage,
	})

	return lead, nil
}

// GetAgentLeads returns an agent's leads with per-stage pipeline counts and
// the total pipeline value, recomputed from the full lead set on every call.
func (s *LeadService) GetAgentLeads(ctx context.Context, agentID string) (*models.AgentLeads, error) {
	leads, err := s.store.ListAgentLeads(ctx, agentID)
	if err != nil {
		return nil, err
	}

	result := &models.AgentLeads{Leads: leads}
	for _, l := range leads {
		result.Pipeline.Add(l.Stage)
		result.TotalValue += l.Value
	}

	return result, nil
}

// ScoreLead loads a lead and computes its 0-100 priority score.
func (s *LeadService) ScoreLead(ctx context.Context, leadID string) (*models.LeadScore, error) {
	lead, err := s.store.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	score := ScoreLeadPriority(lead, s.now())

	return &score, nil
}

// stageScores weights the funnel position. Closed leads contribute nothing:
// priority is about leads that still need work.
var stageScores = map[string]int{
	models.StageProspect:    5,
	models.StageContacted:   10,
	models.StageQualified:   20,
	models.StageProposal:    25,
	models.StageNegotiation: 30,
	models.StageClosed:      0,
}

// ScoreLeadPriority computes a deterministic 0-100 priority for a lead as a
// weighted sum of value tier, funnel stage, and contact recency, capped at
// 100. Pure function; a lead never contacted scores 0 on recency.
func ScoreLeadPriority(lead *models.Lead, now time.Time) models.LeadScore {
	score := models.LeadScore{LeadID: lead.LeadID}

	switch {
	case lead.Value >= 500000:
		score.ValueScore = 40
	case lead.Value >= 250000:
		score.ValueScore = 30
	case lead.Value >= 100000:
		score.ValueScore = 20
	default:
		score.ValueScore = 10
	}

	score.StageScore = stageScores[lead.Stage]

	if lead.LastContactDate != nil {
		switch days := int(now.Sub(*lead.LastContactDate).Hours() / 24); {
		case days <= 7:
			score.RecencyScore = 30
		case days <= 14:
			score.RecencyScore = 20
		case days <= 30:
			score.RecencyScore = 10
		}
	}

	score.Score = score.ValueScore + score.StageScore + score.RecencyScore
	if score.Score > 100 {
		score.Score = 100
	}

	return score
}
