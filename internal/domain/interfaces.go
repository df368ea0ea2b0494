// Package domain defines the canonical service interfaces shared across API
// layers (REST handlers, client, CLI). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/coverdesk/coverdesk/internal/models"
)

// Auditor is the minimal interface for recording audit entries.
// Used by services and handlers for fire-and-forget audit logging.
type Auditor interface {
	RecordAudit(ctx context.Context, e models.AuditEntry) error
}

// AuditService defines audit log query and maintenance operations.
type AuditService interface {
	Auditor
	QueryAudit(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditEntry, bool, error)
	PurgeOldEntries(ctx context.Context, retentionDays int) (int, error)
}

// DocumentService defines all document registry operations.
type DocumentService interface {
	UploadDocument(ctx context.Context, actor models.Actor, req models.UploadDocumentRequest) (*models.Document, error)
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)
	ListDocuments(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error)
	CreateVersion(ctx context.Context, actor models.Actor, documentID string, req models.CreateVersionRequest) (*models.Document, error)
	ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error)
	DeleteDocument(ctx context.Context, actor models.Actor, documentID string) error
	LogAccess(ctx context.Context, actor models.Actor, documentID string, req models.LogAccessRequest) (*models.DocumentAccessLogEntry, error)
	ListAccessLogs(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error)
}

// LeadService defines sales-pipeline lead operations, including scoring.
type LeadService interface {
	CreateLead(ctx context.Context, actor models.Actor, req models.CreateLeadRequest) (*models.Lead, error)
	UpdateLeadStage(ctx context.Context, actor models.Actor, leadID string, req models.UpdateLeadStageRequest) (*models.Lead, error)
	GetAgentLeads(ctx context.Context, agentID string) (*models.AgentLeads, error)
	ScoreLead(ctx context.Context, leadID string) (*models.LeadScore, error)
}

// TaskService defines agent task operations.
type TaskService interface {
	CreateTask(ctx context.Context, actor models.Actor, req models.CreateTaskRequest) (*models.Task, error)
	GetAgentTasks(ctx context.Context, agentID string) (*models.AgentTasks, error)
}

// QuoteService defines quote generation.
type QuoteService interface {
	GenerateQuote(ctx context.Context, actor models.Actor, req models.GenerateQuoteRequest) (*models.Quote, error)
}

// ProposalService defines proposal creation.
type ProposalService interface {
	CreateProposal(ctx context.Context, actor models.Actor, req models.CreateProposalRequest) (*models.Proposal, error)
}

// WorkflowService defines workflow catalog access and the execution engine.
type WorkflowService interface {
	GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error)
	ListWorkflows(ctx context.Context) ([]models.Workflow, error)
	Trigger(ctx context.Context, actor models.Actor, workflowID string, req models.TriggerRequest) (*models.TriggerResult, error)
	GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error)
	ListExecutions(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error)
}
