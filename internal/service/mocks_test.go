package service

import (
	"context"
	"sync"
	"time"

	"github.com/coverdesk/coverdesk/internal/models"
)

func actorFor(id string) models.Actor {
	return models.Actor{ID: id, IPAddress: "198.51.100.7", UserAgent: "test-agent"}
}

// mockAuditor records RecordAudit calls.
type mockAuditor struct {
	mu    sync.Mutex
	calls []models.AuditEntry
	err   error
}

func (m *mockAuditor) RecordAudit(_ context.Context, e models.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, e)
	return m.err
}

func (m *mockAuditor) getCalls() []models.AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AuditEntry(nil), m.calls...)
}

// mockEnqueuer captures audit jobs synchronously, bypassing the worker.
type mockEnqueuer struct {
	mu   sync.Mutex
	jobs []*AuditJob
}

func (m *mockEnqueuer) Enqueue(job *AuditJob) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
}

func (m *mockEnqueuer) getJobs() []*AuditJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*AuditJob(nil), m.jobs...)
}

// mockWorkflowStore records calls and returns configured responses.
type mockWorkflowStore struct {
	mu    sync.Mutex
	calls []string

	getWorkflow     func(ctx context.Context, workflowID string) (*models.Workflow, error)
	listWorkflows   func(ctx context.Context) ([]models.Workflow, error)
	upsertWorkflow  func(ctx context.Context, w models.Workflow) error
	createExecution func(ctx context.Context, executionID, workflowID, entityType, entityID string, startedAt time.Time) error
	finishExecution func(ctx context.Context, executionID, status string, result *models.ExecutionResult, execError string) error
	getExecution    func(ctx context.Context, executionID string) (*models.WorkflowExecution, error)
	listExecutions  func(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error)
}

func (m *mockWorkflowStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockWorkflowStore) getCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockWorkflowStore) GetWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error) {
	m.record("GetWorkflow")
	return m.getWorkflow(ctx, workflowID)
}

func (m *mockWorkflowStore) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	m.record("ListWorkflows")
	return m.listWorkflows(ctx)
}

func (m *mockWorkflowStore) UpsertWorkflow(ctx context.Context, w models.Workflow) error {
	m.record("UpsertWorkflow")
	return m.upsertWorkflow(ctx, w)
}

func (m *mockWorkflowStore) CreateExecution(ctx context.Context, executionID, workflowID, entityType, entityID string, startedAt time.Time) error {
	m.record("CreateExecution")
	return m.createExecution(ctx, executionID, workflowID, entityType, entityID, startedAt)
}

func (m *mockWorkflowStore) FinishExecution(ctx context.Context, executionID, status string, result *models.ExecutionResult, execError string) error {
	m.record("FinishExecution")
	return m.finishExecution(ctx, executionID, status, result, execError)
}

func (m *mockWorkflowStore) GetExecution(ctx context.Context, executionID string) (*models.WorkflowExecution, error) {
	m.record("GetExecution")
	return m.getExecution(ctx, executionID)
}

func (m *mockWorkflowStore) ListExecutions(ctx context.Context, workflowID string, limit int) ([]models.WorkflowExecution, error) {
	m.record("ListExecutions")
	return m.listExecutions(ctx, workflowID, limit)
}

// mockDocumentStore records calls and returns configured responses.
type mockDocumentStore struct {
	mu    sync.Mutex
	calls []string

	createDocument     func(ctx context.Context, documentID, uploadedBy string, req models.UploadDocumentRequest) (*models.Document, error)
	getDocument        func(ctx context.Context, documentID string) (*models.Document, error)
	listDocuments      func(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error)
	createVersion      func(ctx context.Context, documentID, newFileURL, uploadedBy string) (*models.Document, error)
	listVersions       func(ctx context.Context, documentID string) ([]models.DocumentVersion, error)
	softDeleteDocument func(ctx context.Context, documentID string) error
	insertAccessLog    func(ctx context.Context, e models.DocumentAccessLogEntry) error
	listAccessLogs     func(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error)
}

func (m *mockDocumentStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockDocumentStore) CreateDocument(ctx context.Context, documentID, uploadedBy string, req models.UploadDocumentRequest) (*models.Document, error) {
	m.record("CreateDocument")
	return m.createDocument(ctx, documentID, uploadedBy, req)
}

func (m *mockDocumentStore) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	m.record("GetDocument")
	return m.getDocument(ctx, documentID)
}

func (m *mockDocumentStore) ListDocuments(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error) {
	m.record("ListDocuments")
	return m.listDocuments(ctx, entityType, entityID, documentType)
}

func (m *mockDocumentStore) CreateVersion(ctx context.Context, documentID, newFileURL, uploadedBy string) (*models.Document, error) {
	m.record("CreateVersion")
	return m.createVersion(ctx, documentID, newFileURL, uploadedBy)
}

func (m *mockDocumentStore) ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error) {
	m.record("ListVersions")
	return m.listVersions(ctx, documentID)
}

func (m *mockDocumentStore) SoftDeleteDocument(ctx context.Context, documentID string) error {
	m.record("SoftDeleteDocument")
	return m.softDeleteDocument(ctx, documentID)
}

func (m *mockDocumentStore) InsertAccessLog(ctx context.Context, e models.DocumentAccessLogEntry) error {
	m.record("InsertAccessLog")
	return m.insertAccessLog(ctx, e)
}

func (m *mockDocumentStore) ListAccessLogs(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error) {
	m.record("ListAccessLogs")
	return m.listAccessLogs(ctx, documentID, limit)
}

// mockLeadStore records calls and returns configured responses.
type mockLeadStore struct {
	mu    sync.Mutex
	calls []string

	createLead      func(ctx context.Context, leadID string, req models.CreateLeadRequest) (*models.Lead, error)
	getLead         func(ctx context.Context, leadID string) (*models.Lead, error)
	updateLeadStage func(ctx context.Context, leadID, stage string) (*models.Lead, error)
	listAgentLeads  func(ctx context.Context, agentID string) ([]models.Lead, error)
}

func (m *mockLeadStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockLeadStore) CreateLead(ctx context.Context, leadID string, req models.CreateLeadRequest) (*models.Lead, error) {
	m.record("CreateLead")
	return m.createLead(ctx, leadID, req)
}

func (m *mockLeadStore) GetLead(ctx context.Context, leadID string) (*models.Lead, error) {
	m.record("GetLead")
	return m.getLead(ctx, leadID)
}

func (m *mockLeadStore) UpdateLeadStage(ctx context.Context, leadID, stage string) (*models.Lead, error) {
	m.record("UpdateLeadStage")
	return m.updateLeadStage(ctx, leadID, stage)
}

func (m *mockLeadStore) ListAgentLeads(ctx context.Context, agentID string) ([]models.Lead, error) {
	m.record("ListAgentLeads")
	return m.listAgentLeads(ctx, agentID)
}

// mockQuoteStore returns configured responses.
type mockQuoteStore struct {
	createQuote func(ctx context.Context, quoteID string, req models.GenerateQuoteRequest, premium float64, validUntil time.Time) (*models.Quote, error)
}

func (m *mockQuoteStore) CreateQuote(ctx context.Context, quoteID string, req models.GenerateQuoteRequest, premium float64, validUntil time.Time) (*models.Quote, error) {
	return m.createQuote(ctx, quoteID, req, premium, validUntil)
}

// mockProposalStore returns configured responses.
type mockProposalStore struct {
	createProposal func(ctx context.Context, proposalID string, req models.CreateProposalRequest, totalAmount float64, validUntil time.Time) (*models.Proposal, error)
}

func (m *mockProposalStore) CreateProposal(ctx context.Context, proposalID string, req models.CreateProposalRequest, totalAmount float64, validUntil time.Time) (*models.Proposal, error) {
	return m.createProposal(ctx, proposalID, req, totalAmount, validUntil)
}

// mockTaskStore records calls and returns configured responses.
type mockTaskStore struct {
	mu    sync.Mutex
	calls []string

	createTask     func(ctx context.Context, taskID string, req models.CreateTaskRequest) (*models.Task, error)
	listAgentTasks func(ctx context.Context, agentID string) ([]models.Task, error)
}

func (m *mockTaskStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockTaskStore) CreateTask(ctx context.Context, taskID string, req models.CreateTaskRequest) (*models.Task, error) {
	m.record("CreateTask")
	return m.createTask(ctx, taskID, req)
}

func (m *mockTaskStore) ListAgentTasks(ctx context.Context, agentID string) ([]models.Task, error) {
	m.record("ListAgentTasks")
	return m.listAgentTasks(ctx, agentID)
}
