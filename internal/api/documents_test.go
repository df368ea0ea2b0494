package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/coverdesk/coverdesk/internal/api"
	"github.com/coverdesk/coverdesk/internal/models"
)

func TestDocumentUpload_Created(t *testing.T) {
	t.Parallel()

	repo := &mockDocumentRepo{
		uploadFn: func(_ context.Context, actor models.Actor, req models.UploadDocumentRequest) (*models.Document, error) {
			if actor.ID != testAgentID {
				t.Errorf("expected actor %q, got %q", testAgentID, actor.ID)
			}
			return &models.Document{DocumentID: "DOC-1", FileName: req.FileName, Version: 1, IsActive: true}, nil
		},
	}

	h := api.NewDocumentHandler(repo, testLogger())
	r := newTestRouter()
	r.POST("/documents", h.Upload)

	body := `{"file_name":"policy.pdf","file_url":"https://files.example.com/policy.pdf","entity_type":"policy","entity_id":"POL-9"}`
	w := doRequest(r, http.MethodPost, "/documents", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var doc models.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.DocumentID != "DOC-1" || doc.FileName != "policy.pdf" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestDocumentUpload_ValidationError(t *testing.T) {
	t.Parallel()

	h := api.NewDocumentHandler(&mockDocumentRepo{}, testLogger())
	r := newTestRouter()
	r.POST("/documents", h.Upload)

	w := doRequest(r, http.MethodPost, "/documents", `{"file_url":"https://x/y"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDocumentGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockDocumentRepo{
		getFn: func(_ context.Context, _ string) (*models.Document, error) {
			return nil, models.ErrDocumentNotFound
		},
	}

	h := api.NewDocumentHandler(repo, testLogger())
	r := newTestRouter()
	r.GET("/documents/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/documents/DOC-missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDocumentDelete_OK(t *testing.T) {
	t.Parallel()

	var deletedID string
	repo := &mockDocumentRepo{
		deleteFn: func(_ context.Context, _ models.Actor, documentID string) error {
			deletedID = documentID
			return nil
		},
	}

	h := api.NewDocumentHandler(repo, testLogger())
	r := newTestRouter()
	r.DELETE("/documents/:id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/documents/DOC-7", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if deletedID != "DOC-7" {
		t.Errorf("expected DOC-7 deleted, got %q", deletedID)
	}
}

func TestDocumentLogAccess_InvalidType(t *testing.T) {
	t.Parallel()

	h := api.NewDocumentHandler(&mockDocumentRepo{}, testLogger())
	r := newTestRouter()
	r.POST("/documents/:id/access", h.LogAccess)

	w := doRequest(r, http.MethodPost, "/documents/DOC-1/access", `{"access_type":"print"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDocumentListVersions_OK(t *testing.T) {
	t.Parallel()

	repo := &mockDocumentRepo{
		listVersionsFn: func(_ context.Context, documentID string) ([]models.DocumentVersion, error) {
			return []models.DocumentVersion{
				{DocumentID: documentID, Version: 2},
				{DocumentID: documentID, Version: 1},
			}, nil
		},
	}

	h := api.NewDocumentHandler(repo, testLogger())
	r := newTestRouter()
	r.GET("/documents/:id/versions", h.ListVersions)

	w := doRequest(r, http.MethodGet, "/documents/DOC-3/versions", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Versions []models.DocumentVersion `json:"versions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Versions) != 2 {
		t.Errorf("expected 2 versions, got %d", len(body.Versions))
	}
}
