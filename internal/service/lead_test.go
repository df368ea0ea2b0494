package service

import (
	"context"
	"testing"
	"time"

	"github.com/coverdesk/coverdesk/internal/models"
)

func daysAgo(now time.Time, d int) *time.Time {
	t := now.Add(-time.Duration(d) * 24 * time.Hour)
	return &t
}

func TestScoreLeadPriority(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		lead models.Lead
		want int
	}{
		{
			name: "hot lead caps at 100",
			lead: models.Lead{Value: 500000, Stage: models.StageNegotiation, LastContactDate: daysAgo(now, 3)},
			want: 100,
		},
		{
			name: "closed stage contributes zero",
			lead: models.Lead{Value: 500000, Stage: models.StageClosed, LastContactDate: daysAgo(now, 3)},
			want: 70,
		},
		{
			name: "cold prospect",
			lead: models.Lead{Value: 50000, Stage: models.StageProspect},
			want: 15,
		},
		{
			name: "value threshold 100k inclusive",
			lead: models.Lead{Value: 100000, Stage: models.StageProspect},
			want: 25,
		},
		{
			name: "value threshold 250k inclusive",
			lead: models.Lead{Value: 250000, Stage: models.StageContacted},
			want: 40,
		},
		{
			name: "recency bucket 14 days",
			lead: models.Lead{Value: 50000, Stage: models.StageQualified, LastContactDate: daysAgo(now, 12)},
			want: 50,
		},
		{
			name: "recency bucket 30 days",
			lead: models.Lead{Value: 50000, Stage: models.StageQualified, LastContactDate: daysAgo(now, 25)},
			want: 40,
		},
		{
			name: "stale contact scores no recency",
			lead: models.Lead{Value: 50000, Stage: models.StageQualified, LastContactDate: daysAgo(now, 90)},
			want: 30,
		},
		{
			name: "proposal stage",
			lead: models.Lead{Value: 300000, Stage: models.StageProposal, LastContactDate: daysAgo(now, 10)},
			want: 75,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreLeadPriority(&tc.lead, now)
			if score.Score != tc.want {
				t.Errorf("Score = %d, want %d (value=%d stage=%d recency=%d)",
					score.Score, tc.want, score.ValueScore, score.StageScore, score.RecencyScore)
			}
		})
	}
}

func TestGetAgentLeads_PipelineCounts(t *testing.T) {
	store := &mockLeadStore{}
	store.listAgentLeads = func(_ context.Context, _ string) ([]models.Lead, error) {
		return []models.Lead{
			{LeadID: "LEAD-1", Stage: models.StageProspect, Value: 100000},
			{LeadID: "LEAD-2", Stage: models.StageProspect, Value: 50000},
			{LeadID: "LEAD-3", Stage: models.StageNegotiation, Value: 750000},
			{LeadID: "LEAD-4", Stage: models.StageClosed, Value: 200000},
		}, nil
	}

	svc := NewLeadService(store, nil, testLogger())

	agg, err := svc.GetAgentLeads(context.Background(), "agent-1")
	if err != nil {
		t.Fatalf("GetAgentLeads: %v", err)
	}

	if agg.Pipeline.Prospect != 2 {
		t.Errorf("Pipeline.Prospect = %d, want 2", agg.Pipeline.Prospect)
	}
	if agg.Pipeline.Negotiation != 1 {
		t.Errorf("Pipeline.Negotiation = %d, want 1", agg.Pipeline.Negotiation)
	}
	if agg.Pipeline.Closed != 1 {
		t.Errorf("Pipeline.Closed = %d, want 1", agg.Pipeline.Closed)
	}
	if agg.Pipeline.Contacted != 0 || agg.Pipeline.Qualified != 0 || agg.Pipeline.Proposal != 0 {
		t.Error("empty stages have nonzero counts")
	}
	if agg.TotalValue != 1100000 {
		t.Errorf("TotalValue = %v, want 1100000", agg.TotalValue)
	}
}

func TestCreateLead_AuditsAndValidates(t *testing.T) {
	store := &mockLeadStore{}
	store.createLead = func(_ context.Context, leadID string, req models.CreateLeadRequest) (*models.Lead, error) {
		return &models.Lead{LeadID: leadID, AgentID: req.AgentID, CustomerName: req.CustomerName, Stage: models.StageProspect}, nil
	}
	enq := &mockEnqueuer{}

	svc := NewLeadService(store, enq, testLogger())
	ctx := context.Background()

	lead, err := svc.CreateLead(ctx, actorFor("agent-1"), models.CreateLeadRequest{
		AgentID:      "agent-1",
		CustomerName: "Meera Kapoor",
		Value:        120000,
	})
	if err != nil {
		t.Fatalf("CreateLead: %v", err)
	}
	if lead.Stage != models.StageProspect {
		t.Errorf("Stage = %q, want prospect", lead.Stage)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 || jobs[0].Action != "CREATE_LEAD" {
		t.Fatalf("audit jobs = %+v, want one CREATE_LEAD", jobs)
	}

	// Validation failures never hit the store.
	_, err = svc.CreateLead(ctx, actorFor("agent-1"), models.CreateLeadRequest{AgentID: "agent-1"})
	if err == nil {
		t.Fatal("CreateLead accepted a missing customer name")
	}
	if len(store.calls) != 1 {
		t.Errorf("store calls = %d, want 1", len(store.calls))
	}
}

func TestUpdateLeadStage_RejectsUnknownStage(t *testing.T) {
	store := &mockLeadStore{}
	svc := NewLeadService(store, nil, testLogger())

	_, err := svc.UpdateLeadStage(context.Background(), actorFor("agent-1"), "LEAD-1",
		models.UpdateLeadStageRequest{Stage: "won"})
	if err == nil {
		t.Fatal("UpdateLeadStage accepted an unknown stage")
	}
	if len(store.calls) != 0 {
		t.Errorf("store calls = %d, want 0", len(store.calls))
	}
}
