package api_test

import (
	"context"

	"github.com/coverdesk/coverdesk/internal/models"
)

// mockAuditRepo implements api.AuditRepository for testing.
type mockAuditRepo struct {
	queryFn func(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditEntry, bool, error)
	purgeFn func(ctx context.Context, retentionDays int) (int, error)
}

func (m *mockAuditRepo) QueryAudit(ctx context.Context, opts models.AuditQueryOpts) ([]models.AuditEntry, bool, error) {
	return m.queryFn(ctx, opts)
}

func (m *mockAuditRepo) PurgeOldEntries(ctx context.Context, retentionDays int) (int, error) {
	return m.purgeFn(ctx, retentionDays)
}

// mockDocumentRepo implements api.DocumentRepository for testing.
type mockDocumentRepo struct {
	uploadFn         func(ctx context.Context, actor models.Actor, req models.UploadDocumentRequest) (*models.Document, error)
	getFn            func(ctx context.Context, documentID string) (*models.Document, error)
	listFn           func(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error)
	createVersionFn  func(ctx context.Context, actor models.Actor, documentID string, req models.CreateVersionRequest) (*models.Document, error)
	listVersionsFn   func(ctx context.Context, documentID string) ([]models.DocumentVersion, error)
	deleteFn         func(ctx context.Context, actor models.Actor, documentID string) error
	logAccessFn      func(ctx context.Context, actor models.Actor, documentID string, req models.LogAccessRequest) (*models.DocumentAccessLogEntry, error)
	listAccessLogsFn func(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error)
}

func (m *mockDocumentRepo) UploadDocument(ctx context.Context, actor models.Actor, req models.UploadDocumentRequest) (*models.Document, error) {
	return m.uploadFn(ctx, actor, req)
}

func (m *mockDocumentRepo) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	return m.getFn(ctx, documentID)
}

func (m *mockDocumentRepo) ListDocuments(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error) {
	return m.listFn(ctx, entityType, entityID, documentType)
}

func (m *mockDocumentRepo) CreateVersion(ctx context.Context, actor models.Actor, documentID string, req models.CreateVersionRequest) (*models.Document, error) {
	return m.createVersionFn(ctx, actor, documentID, req)
}

func (m *mockDocumentRepo) ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error) {
	return m.listVersionsFn(ctx, documentID)
}

func (m *mockDocumentRepo) DeleteDocument(ctx context.Context, actor models.Actor, documentID string) error {
	return m.deleteFn(ctx, actor, documentID)
}

func (m *mockDocumentRepo) LogAccess(ctx context.Context, actor models.Actor, documentID string, req models.LogAccessRequest) (*models.DocumentAccessLogEntry, error) {
	return m.logAccessFn(ctx, actor, documentID, req)
}

func (m *mockDocumentRepo) ListAccessLogs(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error) {
	return m.listAccessLogsFn(ctx, documentID, limit)
}

// mockLeadRepo implements api.LeadRepository for testing.
type mockLeadRepo struct {
	createFn      func(ctx context.Context, actor models.Actor, req models.CreateLeadRequest) (*models.Lead, error)
	updateStageFn func(ctx context.Context, actor models.Actor, leadID string, req models.UpdateLeadStageRequest) (*models.Lead, error)
	agentLeadsFn  func(ctx context.Context, agentID string) (*models.AgentLeads, error)
	scoreFn       func(ctx context.Context, leadID string) (*models.LeadScore, error)
}

func (m *mockLeadRepo) CreateLead(ctx context.Context, actor models.Actor, req models.CreateLeadRequest) (*models.Lead, error) {
	return m.createFn(ctx, actor, req)
}

func (m *mockLeadRepo) UpdateLeadStage(ctx context.Context, actor models.Actor, leadID string, req models.UpdateLeadStageRequest) (*models.Lead, error) {
	return m.updateStageFn(ctx, actor, leadID, req)
}

func (m *mockLeadRepo) GetAgentLeads(ctx context.Context, agentID string) (*models.AgentLeads, error) {
	return m.agentLeadsFn(ctx, agentID)
}

func (m *mockLeadRepo) ScoreLead(ctx context.Context, leadID string) (*models.LeadScore, error) {
	return m.scoreFn(ctx, leadID)
}

// mockTaskRepo implements api.TaskRepository for testing.
type mockTaskRepo struct {
	createFn     func(ctx context.Context, actor models.Actor, req models.CreateTaskRequest) (*models.Task, error)
	agentTasksFn func(ctx context.Context, agentID string) (*models.AgentTasks, error)
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, actor models.Actor, req models.CreateTaskRequest) (*models.Task, error) {
	return m.createFn(ctx, actor, req)
}

func (m *mockTaskRepo) GetAgentTasks(ctx context.Context, agentID string) (*models.AgentTasks, error) {
	return m.agentTasksFn(ctx, agentID)
}

// mockQuoteRepo implements api.QuoteRepository for testing.
type mockQuoteRepo struct {
	generateFn func(ctx context.Context, actor models.Actor, req models.GenerateQuoteRequest) (*models.Quote, error)
}

func (m *mockQuoteRepo) GenerateQuote(ctx context.Context, actor models.Actor, req models.GenerateQuoteRequest) (*models.Quote, error) {
	return m.generateFn(ctx, actor, req)
}

// mockProposalRepo implements api.ProposalRepository for testing.
type mockProposalRepo struct {
	createFn func(ctx context.Context, actor models.Actor, req models.CreateProposalRequest) (*models.Proposal, error)
}

func (m *mockProposalRepo) CreateProposal(ctx context.Context, actor models.Actor, req models.CreateProposalRequest) (*models.Proposal, error) {
	return m.createFn(ctx, actor, req)
}

// mockWorkflowRepo implements api.WorkflowRepository for testing.
type mockWorkflowRepo struct {
	getFn            func(ctx context.Context, workflowID string) (*models.Workflow, error)
	listFn           func(ctx context.Context) ([]models.Workflow, error)
	triggerFn        func(ctx context.Context, actor models.Actor, workflowID string, req models.TriggerRequest) (*models.TriggerResult, error)
	getExecutionFn   func(ctx context.Context, executionID string) (*models.WorkflowExecution, error)
	listExecutionsFn func(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error)
}

func (m *mockWorkflowRepo) GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error) {
	return m.getFn(ctx, workflowID)
}

func (m *mockWorkflowRepo) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	return m.listFn(ctx)
}

func (m *mockWorkflowRepo) Trigger(ctx context.Context, actor models.Actor, workflowID string, req models.TriggerRequest) (*models.TriggerResult, error) {
	return m.triggerFn(ctx, actor, workflowID, req)
}

func (m *mockWorkflowRepo) GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error) {
	return m.getExecutionFn(ctx, executionID)
}

func (m *mockWorkflowRepo) ListExecutions(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error) {
	return m.listExecutionsFn(ctx, workflowID, limit)
}
