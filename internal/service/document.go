package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/domain"
	"github.com/coverdesk/coverdesk/internal/models"
)

// DocumentStore is the data-access interface DocumentService depends on.
type DocumentStore interface {
	CreateDocument(ctx context.Context, documentID, uploadedBy string, req models.UploadDocumentRequest) (*models.Document, error)
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)
	ListDocuments(ctx context.Context, entityType, entityID, documentType string) ([]models.Document, error)
	CreateVersion(ctx context.Context, documentID, newFileURL, uploadedBy string) (*models.Document, error)
	ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error)
	SoftDeleteDocument(ctx context.Context, documentID string) error
	InsertAccessLog(ctx context.Context, e models.DocumentAccessLogEntry) error
	ListAccessLogs(ctx context.Context, documentID string, limit int) ([]models.DocumentAccessLogEntry, error)
}

// Compile-time check: *DocumentService must satisfy domain.DocumentService.
var _ domain.DocumentService = (*DocumentService)(nil)

// DocumentService wraps DocumentStore with ID generation and audit logging.
// Audit entries are written only for operations that changed state: a NotFound
// never produces one.
type DocumentService struct {
	store       DocumentStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(store DocumentStore, auditWorker AuditEnqueuer, log *logrus.Logger) *DocumentService {
	return &DocumentService{store: store, auditWorker: auditWorker, log: log}
}

// UploadDocument validates the request, registers the document at version 1,
// and records an UPLOAD_DOCUMENT audit entry.
func (s *DocumentService) UploadDocument(
	ctx context.Context, actor models.Actor, req models.UploadDocumentRequest,
) (*models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.store.CreateDocument(ctx, models.NewEntityID("DOC"), actor.ID, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "UPLOAD_DOCUMENT", "document", doc.DocumentID, map[string]any{
		"file_name":     doc.FileName,
		"entity_type":   doc.EntityType,
		"entity_id":     doc.EntityID,
		"document_type": doc.DocumentType,
	})

	return doc, nil
}

// GetDocument returns a single document by ID (pass-through).
func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	return s.store.GetDocument(ctx, documentID)
}

// ListDocuments returns active documents for an entity (pass-through).
func (s *DocumentService) ListDocuments(
	ctx context.Context, entityType, entityID, documentType string,
) ([]models.Document, error) {
	return s.store.ListDocuments(ctx, entityType, entityID, documentType)
}

// CreateVersion replaces the document's file URL, increments its version
// counter, and records an UPDATE_DOCUMENT_VERSION audit entry.
func (s *DocumentService) CreateVersion(
	ctx context.Context, actor models.Actor, documentID string, req models.CreateVersionRequest,
) (*models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.store.CreateVersion(ctx, documentID, req.FileURL, actor.ID)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actor, "UPDATE_DOCUMENT_VERSION", "document", documentID, map[string]any{
		"version":  doc.Version,
		"file_url": doc.FileURL,
	})

	return doc, nil
}

// ListVersions returns retained prior versions of a document (pass-through).
func (s *DocumentService) ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error) {
	return s.store.ListVersions(ctx, documentID)
}

// DeleteDocument soft-deletes a document and records a DELETE_DOCUMENT audit entry.
func (s *DocumentService) DeleteDocument(ctx context.Context, actor models.Actor, documentID string) error {
	if err := s.store.SoftDeleteDocument(ctx, documentID); err != nil {
		return err
	}

	auditAsync(s.auditWorker, actor, "DELETE_DOCUMENT", "document", documentID, nil)

	return nil
}

// LogAccess records a document access. Purely additive: the document itself is
// not touched and no audit entry is written beyond the access log row.
func (s *DocumentService) LogAccess(
	ctx context.Context, actor models.Actor, documentID string, req models.LogAccessRequest,
) (*models.DocumentAccessLogEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := models.DocumentAccessLogEntry{
		LogID:      models.NewEntityID("DAL"),
		DocumentID: documentID,
		AccessedBy: actor.ID,
		AccessType: req.AccessType,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	}

	if err := s.store.InsertAccessLog(ctx, entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListAccessLogs returns access log entries for a document (pass-through).
func (s *DocumentService) ListAccessLogs(
	ctx context.Context, documentID string, limit int,
) ([]models.DocumentAccessLogEntry, error) {
	return s.store.ListAccessLogs(ctx, documentID, limit)
}
