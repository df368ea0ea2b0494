package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/coverdesk/coverdesk/internal/models"
)

func TestUploadDocument_GeneratesIDAndAudits(t *testing.T) {
	store := &mockDocumentStore{}
	store.createDocument = func(_ context.Context, documentID, uploadedBy string, req models.UploadDocumentRequest) (*models.Document, error) {
		return &models.Document{
			DocumentID: documentID,
			FileName:   req.FileName,
			EntityType: req.EntityType,
			EntityID:   req.EntityID,
			UploadedBy: uploadedBy,
			Version:    1,
			IsActive:   true,
		}, nil
	}
	enq := &mockEnqueuer{}

	svc := NewDocumentService(store, enq, testLogger())

	doc, err := svc.UploadDocument(context.Background(), actorFor("agent-1"), models.UploadDocumentRequest{
		FileName:   "kyc-form.pdf",
		FileType:   "application/pdf",
		FileSize:   1024,
		FileURL:    "https://files.example.com/kyc-form.pdf",
		EntityType: "customer",
		EntityID:   "CUST-9",
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}

	if !strings.HasPrefix(doc.DocumentID, "DOC-") {
		t.Errorf("DocumentID = %q, want DOC- prefix", doc.DocumentID)
	}
	if doc.UploadedBy != "agent-1" {
		t.Errorf("UploadedBy = %q, want agent-1", doc.UploadedBy)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 || jobs[0].Action != "UPLOAD_DOCUMENT" {
		t.Fatalf("audit jobs = %+v, want one UPLOAD_DOCUMENT", jobs)
	}
	if jobs[0].EntityID != doc.DocumentID {
		t.Errorf("audit entity_id = %q, want %q", jobs[0].EntityID, doc.DocumentID)
	}
}

func TestUploadDocument_ValidationSkipsStore(t *testing.T) {
	store := &mockDocumentStore{}
	enq := &mockEnqueuer{}

	svc := NewDocumentService(store, enq, testLogger())

	_, err := svc.UploadDocument(context.Background(), actorFor("agent-1"), models.UploadDocumentRequest{
		FileURL:    "https://files.example.com/x.pdf",
		EntityType: "customer",
		EntityID:   "CUST-9",
	})
	if !errors.Is(err, models.ErrMissingFileName) {
		t.Fatalf("err = %v, want ErrMissingFileName", err)
	}
	if len(store.calls) != 0 {
		t.Errorf("store calls = %d, want 0", len(store.calls))
	}
	if len(enq.getJobs()) != 0 {
		t.Error("audit entry written for rejected upload")
	}
}

func TestCreateVersion_NotFoundWritesNoAudit(t *testing.T) {
	store := &mockDocumentStore{}
	store.createVersion = func(_ context.Context, _, _, _ string) (*models.Document, error) {
		return nil, models.ErrDocumentNotFound
	}
	enq := &mockEnqueuer{}

	svc := NewDocumentService(store, enq, testLogger())

	_, err := svc.CreateVersion(context.Background(), actorFor("agent-1"), "DOC-missing",
		models.CreateVersionRequest{FileURL: "https://files.example.com/v2.pdf"})
	if !errors.Is(err, models.ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
	if len(enq.getJobs()) != 0 {
		t.Error("audit entry written for failed version create")
	}
}

func TestDeleteDocument_Audits(t *testing.T) {
	store := &mockDocumentStore{}
	store.softDeleteDocument = func(_ context.Context, _ string) error { return nil }
	enq := &mockEnqueuer{}

	svc := NewDocumentService(store, enq, testLogger())

	if err := svc.DeleteDocument(context.Background(), actorFor("agent-1"), "DOC-1"); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}

	jobs := enq.getJobs()
	if len(jobs) != 1 || jobs[0].Action != "DELETE_DOCUMENT" {
		t.Fatalf("audit jobs = %+v, want one DELETE_DOCUMENT", jobs)
	}
}

func TestLogAccess_CarriesActorAttribution(t *testing.T) {
	store := &mockDocumentStore{}
	var inserted models.DocumentAccessLogEntry
	store.insertAccessLog = func(_ context.Context, e models.DocumentAccessLogEntry) error {
		inserted = e
		return nil
	}

	svc := NewDocumentService(store, &mockEnqueuer{}, testLogger())

	entry, err := svc.LogAccess(context.Background(), actorFor("agent-1"), "DOC-1",
		models.LogAccessRequest{AccessType: models.AccessTypeView})
	if err != nil {
		t.Fatalf("LogAccess: %v", err)
	}

	if !strings.HasPrefix(entry.LogID, "DAL-") {
		t.Errorf("LogID = %q, want DAL- prefix", entry.LogID)
	}
	if inserted.AccessedBy != "agent-1" {
		t.Errorf("AccessedBy = %q, want agent-1", inserted.AccessedBy)
	}
	if inserted.IPAddress != "198.51.100.7" {
		t.Errorf("IPAddress = %q, want the actor's address", inserted.IPAddress)
	}

	// Invalid access types are rejected before the store.
	_, err = svc.LogAccess(context.Background(), actorFor("agent-1"), "DOC-1",
		models.LogAccessRequest{AccessType: "print"})
	if err == nil {
		t.Fatal("LogAccess accepted an unknown access type")
	}
}
