package client

import (
	"time"
)

// AuditEntry is a single row of the append-only audit trail.
type AuditEntry struct {
	ID         int64          `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	UserID     string         `json:"user_id"`
	Changes    map[string]any `json:"changes,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Document is a registered document with its current version pointer.
type Document struct {
	DocumentID   string         `json:"document_id"`
	FileName     string         `json:"file_name"`
	FileType     string         `json:"file_type"`
	FileSize     int64          `json:"file_size"`
	FileURL      string         `json:"file_url"`
	EntityType   string         `json:"entity_type"`
	EntityID     string         `json:"entity_id"`
	DocumentType string         `json:"document_type"`
	UploadedBy   string         `json:"uploaded_by"`
	Version      int            `json:"version"`
	IsActive     bool           `json:"is_active"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	UploadedAt   time.Time      `json:"uploaded_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DocumentVersion is a retained prior version of a document.
type DocumentVersion struct {
	DocumentID string    `json:"document_id"`
	Version    int       `json:"version"`
	FileURL    string    `json:"file_url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentAccessLogEntry records a single view/download/print of a document.
type DocumentAccessLogEntry struct {
	LogID      string    `json:"log_id"`
	DocumentID string    `json:"document_id"`
	AccessedBy string    `json:"accessed_by"`
	AccessType string    `json:"access_type"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	AccessedAt time.Time `json:"accessed_at"`
}

// UploadDocumentRequest is the payload for registering a document.
type UploadDocumentRequest struct {
	FileName     string         `json:"file_name"`
	FileType     string         `json:"file_type"`
	FileSize     int64          `json:"file_size"`
	FileURL      string         `json:"file_url"`
	EntityType   string         `json:"entity_type"`
	EntityID     string         `json:"entity_id"`
	DocumentType string         `json:"document_type"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Lead is a sales lead in an agent's pipeline.
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

// Pipeline counts leads per stage.
type Pipeline struct {
	Prospect    int `json:"prospect"`
	Contacted   int `json:"contacted"`
	Qualified   int `json:"qualified"`
	Proposal    int `json:"proposal"`
	Negotiation int `json:"negotiation"`
	Closed      int `json:"closed"`
}

// AgentLeads aggregates an agent's leads with pipeline counts.
type AgentLeads struct {
	Leads      []Lead   `json:"leads"`
	Pipeline   Pipeline `json:"pipeline"`
	TotalValue float64  `json:"total_value"`
}

// LeadScore is the composite priority score for a lead.
type LeadScore struct {
	LeadID       string `json:"lead_id"`
	Score        int    `json:"score"`
	ValueScore   int    `json:"value_score"`
	StageScore   int    `json:"stage_score"`
	RecencyScore int    `json:"recency_score"`
}

// CreateLeadRequest is the payload for creating a lead.
type CreateLeadRequest struct {
	AgentID      string  `json:"agent_id"`
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Value        float64 `json:"value"`
}

// Task is an agent work item.
type Task struct {
	TaskID      string    `json:"task_id"`
	AgentID     string    `json:"agent_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskCounts counts tasks per status.
type TaskCounts struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// AgentTasks aggregates an agent's tasks with status counts.
type AgentTasks struct {
	Tasks    []Task     `json:"tasks"`
	ByStatus TaskCounts `json:"by_status"`
	Overdue  int        `json:"overdue"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	AgentID     string    `json:"agent_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority"`
}

// Quote is a generated policy quote.
type Quote struct {
	QuoteID    string    `json:"quote_id"`
	AgentID    string    `json:"agent_id"`
	CustomerID string    `json:"customer_id"`
	PolicyType string    `json:"policy_type"`
	Coverage   float64   `json:"coverage"`
	Term       int       `json:"term"`
	Premium    float64   `json:"premium"`
	Status     string    `json:"status"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GenerateQuoteRequest is the payload for generating a quote.
type GenerateQuoteRequest struct {
	AgentID    string  `json:"agent_id"`
	CustomerID string  `json:"customer_id"`
	PolicyType string  `json:"policy_type"`
	Coverage   float64 `json:"coverage"`
	Term       int     `json:"term"`
}

// ProposalItem is one line item of a proposal.
type ProposalItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Proposal is a customer proposal with line items.
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

// CreateProposalRequest is the payload for creating a proposal.
type CreateProposalRequest struct {
	AgentID    string         `json:"agent_id"`
	CustomerID string         `json:"customer_id"`
	Title      string         `json:"title"`
	Items      []ProposalItem `json:"items"`
}

// TriggerCondition is a single stored workflow trigger condition.
type TriggerCondition struct {
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// Action is one step of a workflow.
type Action struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

// Workflow is a stored automation definition.
type Workflow struct {
	WorkflowID string                      `json:"workflow_id"`
	Name       string                      `json:"name"`
	Type       string                      `json:"type"`
	Triggers   map[string]TriggerCondition `json:"triggers,omitempty"`
	Actions    []Action                    `json:"actions"`
	IsActive   bool                        `json:"is_active"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// ActionResult is the outcome of a single workflow action.
type ActionResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExecutionResult is the aggregate outcome of a workflow run.
type ExecutionResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Results []ActionResult `json:"results"`
}

// WorkflowExecution is one concrete run of a workflow against an entity.
type WorkflowExecution struct {
	ExecutionID string           `json:"execution_id"`
	WorkflowID  string           `json:"workflow_id"`
	EntityType  string           `json:"entity_type"`
	EntityID    string           `json:"entity_id"`
	Status      string           `json:"status"`
	Result      *ExecutionResult `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// TriggerRequest is the payload for triggering a workflow against an entity.
type TriggerRequest struct {
	EntityType      string         `json:"entity_type"`
	EntityID        string         `json:"entity_id"`
	Data            map[string]any `json:"data,omitempty"`
	EnforceTriggers bool           `json:"enforce_triggers,omitempty"`
}

// TriggerResult is returned by the trigger endpoint.
type TriggerResult struct {
	ExecutionID string           `json:"execution_id"`
	Status      string           `json:"status"`
	Result      *ExecutionResult `json:"result"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	SchemaVersion int     `json:"schema_version"`
	Database      string  `json:"database"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// StatsResponse is returned by the stats endpoint.
type StatsResponse struct {
	Leads              int `json:"leads"`
	Tasks              int `json:"tasks"`
	Documents          int `json:"documents"`
	Quotes             int `json:"quotes"`
	Proposals          int `json:"proposals"`
	Workflows          int `json:"workflows"`
	WorkflowExecutions int `json:"workflow_executions"`
	AuditEntries       int `json:"audit_entries"`
}

// AuditQueryOptions holds parameters for querying audit logs.
type AuditQueryOptions struct {
	EntityType string
	EntityID   string
	Action     string
	Since      *time.Time
	Limit      int
	Offset     int
}

// DocumentListOptions holds parameters for listing documents.
type DocumentListOptions struct {
	EntityType   string
	EntityID     string
	DocumentType string
}
