package models

import "time"

// Lead stages, in funnel order. The enum is closed; transitions are not
// restricted — any stage may follow any stage.
const (
	StageProspect    = "prospect"
	StageContacted   = "contacted"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosed      = "closed"
)

// LeadStages lists all stages in funnel order, used for pipeline counts.
var LeadStages = []string{
	StageProspect, StageContacted, StageQualified,
	StageProposal, StageNegotiation, StageClosed,
}

// validStages is the set of allowed lead stages.
var validStages = map[string]bool{
	StageProspect:    true,
	StageContacted:   true,
	StageQualified:   true,
	StageProposal:    true,
	StageNegotiation: true,
	StageClosed:      true,
}

// ValidLeadStage reports whether s is a member of the stage enumeration.
func ValidLeadStage(s string) bool { return validStages[s] }

// Lead is a sales-pipeline entry owned by an agent.
type Lead struct {
	LeadID          string     `json:"lead_id"`
	AgentID         string     `json:"agent_id"`
	CustomerName    string     `json:"customer_name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Stage           string     `json:"stage"`
	Value           float64    `json:"value"`
	Probability     float64    `json:"probability"`
	LastContactDate *time.Time `json:"last_contact_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Pipeline holds per-stage lead counts for one agent.
type Pipeline struct {
	Prospect    int `json:"prospect"`
	Contacted   int `json:"contacted"`
	Qualified   int `json:"qualified"`
	Proposal    int `json:"proposal"`
	Negotiation int `json:"negotiation"`
	Closed      int `json:"closed"`
}

// Add increments the count for the given stage.
func (p *Pipeline) Add(stage string) {
	switch stage {
	case StageProspect:
		p.Prospect++
	case StageContacted:
		p.Contacted++
	case StageQualified:
		p.Qualified++
	case StageProposal:
		p.Proposal++
	case StageNegotiation:
		p.Negotiation++
	case StageClosed:
		p.Closed++
	}
}

// AgentLeads is the aggregate returned for an agent's pipeline view.
// Pipeline and TotalValue are recomputed from the full lead set on every call.
type AgentLeads struct {
	Leads      []Lead   `json:"leads"`
	Pipeline   Pipeline `json:"pipeline"`
	TotalValue float64  `json:"total_value"`
}

// LeadScore is the computed 0-100 priority of a lead, with the three
// component scores broken out. Never stored; recomputed on request.
type LeadScore struct {
	LeadID       string `json:"lead_id"`
	Score        int    `json:"score"`
	ValueScore   int    `json:"value_score"`
	StageScore   int    `json:"stage_score"`
	RecencyScore int    `json:"recency_score"`
}

// CreateLeadRequest is the payload for creating a lead. New leads always start
// at the prospect stage.
type CreateLeadRequest struct {
	AgentID      string  `json:"agent_id"`
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Value        float64 `json:"value"`
}

// Validate checks required CreateLeadRequest fields.
func (r *CreateLeadRequest) Validate() error {
	if r.AgentID == "" {
		return ErrMissingAgentID
	}

	if r.CustomerName == "" {
		return ErrMissingCustomerName
	}

	if len(r.CustomerName) > 255 {
		return ErrFieldTooLong("customer_name", 255)
	}

	return nil
}

// UpdateLeadStageRequest is the payload for moving a lead to a new stage.
type UpdateLeadStageRequest struct {
	Stage string `json:"stage"`
}

// Validate checks the stage against the closed enumeration.
func (r *UpdateLeadStageRequest) Validate() error {
	if !ValidLeadStage(r.Stage) {
		return ErrInvalidEnum("stage", r.Stage)
	}

	return nil
}
