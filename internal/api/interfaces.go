package api

import (
	"context"

	"github.com/coverdesk/coverdesk/internal/models"
)

// AuditRepository defines audit log operations used by AuditHandler.
type AuditRepository interface {
	QueryAudit(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditEntry, bool, error)
	PurgeOldEntries(ctx context.Context, retentionDays int) (int, error)
}

// DocumentRepository defines document registry operations used by DocumentHandler.
type DocumentRepository interface {
	UploadDocument(ctx context.Context, actor models.Actor, req models.UploadDocumentRequest) (*models.Document, error)
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)
	ListDocuments(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error)
	CreateVersion(ctx context.Context, actor models.Actor, documentID string, req models.CreateVersionRequest) (*models.Document, error)
	ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error)
	DeleteDocument(ctx context.Context, actor models.Actor, documentID string) error
	LogAccess(ctx context.Context, actor models.Actor, documentID string, req models.LogAccessRequest) (*models.DocumentAccessLogEntry, error)
	ListAccessLogs(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error)
}

// LeadRepository defines lead pipeline operations used by LeadHandler.
type LeadRepository interface {
	CreateLead(ctx context.Context, actor models.Actor, req models.CreateLeadRequest) (*models.Lead, error)
	UpdateLeadStage(ctx context.Context, actor models.Actor, leadID string, req models.UpdateLeadStageRequest) (*models.Lead, error)
	GetAgentLeads(ctx context.Context, agentID string) (*models.AgentLeads, error)
	ScoreLead(ctx context.Context, leadID string) (*models.LeadScore, error)
}

// TaskRepository defines task operations used by TaskHandler.
type TaskRepository interface {
	CreateTask(ctx context.Context, actor models.Actor, req models.CreateTaskRequest) (*models.Task, error)
	GetAgentTasks(ctx context.Context, agentID string) (*models.AgentTasks, error)
}

// QuoteRepository defines quote generation used by QuoteHandler.
type QuoteRepository interface {
	GenerateQuote(ctx context.Context, actor models.Actor, req models.GenerateQuoteRequest) (*models.Quote, error)
}

// ProposalRepository defines proposal creation used by ProposalHandler.
type ProposalRepository interface {
	CreateProposal(ctx context.Context, actor models.Actor, req models.CreateProposalRequest) (*models.Proposal, error)
}

// WorkflowRepository defines workflow catalog and engine operations used by WorkflowHandler.
type WorkflowRepository interface {
	GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error)
	ListWorkflows(ctx context.Context) ([]models.Workflow, error)
	Trigger(ctx context.Context, actor models.Actor, workflowID string, req models.TriggerRequest) (*models.TriggerResult, error)
	GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error)
	ListExecutions(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error)
}
