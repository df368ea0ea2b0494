package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/coverdesk/coverdesk/internal/api"
	"github.com/coverdesk/coverdesk/internal/models"
)

func TestQuoteGenerate_Created(t *testing.T) {
	t.Parallel()

	repo := &mockQuoteRepo{
		generateFn: func(_ context.Context, _ models.Actor, req models.GenerateQuoteRequest) (*models.Quote, error) {
			return &models.Quote{QuoteID: "QTE-1", AgentID: req.AgentID, Premium: 5000, Status: models.QuoteStatusDraft}, nil
		},
	}

	h := api.NewQuoteHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/quotes", h.Generate)

	body := `{"agent_id":"agent-test-1","customer_id":"CUST-1","policy_type":"term_life","coverage":1000000,"term":1}`
	w := doRequest(r, http.MethodPost, "/quotes", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var quote models.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if quote.Premium != 5000 || quote.Status != models.QuoteStatusDraft {
		t.Errorf("unexpected quote: %+v", quote)
	}
}

func TestQuoteGenerate_RejectsNonPositiveCoverage(t *testing.T) {
	t.Parallel()

	h := api.NewQuoteHandler(&mockQuoteRepo{}, testLogger())
	r := newTestRouter()
	r.POST("/quotes", h.Generate)

	w := doRequest(r, http.MethodPost, "/quotes", `{"agent_id":"agent-test-1","customer_id":"CUST-1","coverage":0,"term":1}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestProposalCreate_Created(t *testing.T) {
	t.Parallel()

	repo := &mockProposalRepo{
		createFn: func(_ context.Context, _ models.Actor, req models.CreateProposalRequest) (*models.Proposal, error) {
			return &models.Proposal{ProposalID: "PRP-1", AgentID: req.AgentID, Title: req.Title, TotalAmount: req.TotalAmount()}, nil
		},
	}

	h := api.NewProposalHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/proposals", h.Create)

	body := `{"agent_id":"agent-test-1","customer_id":"CUST-1","title":"Family cover bundle","items":[{"description":"Term life","quantity":1,"unit_price":12000,"total":12000}]}`
	w := doRequest(r, http.MethodPost, "/proposals", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var proposal models.Proposal
	if err := json.Unmarshal(w.Body.Bytes(), &proposal); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if proposal.TotalAmount != 12000 {
		t.Errorf("expected total 12000, got %v", proposal.TotalAmount)
	}
}

func TestProposalCreate_RejectsEmptyItems(t *testing.T) {
	t.Parallel()

	h := api.NewProposalHandler(&mockProposalRepo{}, testLogger())
	r := newTestRouter()
	r.POST("/proposals", h.Create)

	w := doRequest(r, http.MethodPost, "/proposals", `{"agent_id":"agent-test-1","title":"Empty","items":[]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
