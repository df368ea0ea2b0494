package client

import (
	"context"
	"net/url"
	"strconv"
)

// DocumentService handles document registry operations.
type DocumentService struct {
	c *Client
}

// Upload registers a document that has already been stored externally.
func (s *DocumentService) Upload(ctx context.Context, req *UploadDocumentRequest) (*Document, error) {
	var doc Document
	if err := s.c.post(ctx, "/api/v1/documents", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Get returns a single document by ID, whether active or soft-deleted.
func (s *DocumentService) Get(ctx context.Context, id string) (*Document, error) {
	var doc Document
	if err := s.c.get(ctx, "/api/v1/documents/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns active documents with optional entity filtering.
func (s *DocumentService) List(ctx context.Context, opts *DocumentListOptions) ([]Document, error) {
	params := url.Values{}
	if opts != nil {
		if opts.EntityType != "" {
			params.Set("entity_type", opts.EntityType)
		}
		if opts.EntityID != "" {
			params.Set("entity_id", opts.EntityID)
		}
		if opts.DocumentType != "" {
			params.Set("document_type", opts.DocumentType)
		}
	}
	var resp struct {
		Documents []Document `json:"documents"`
	}
	if err := s.c.get(ctx, "/api/v1/documents", params, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// CreateVersion retains the current version and points the document at a
// new file URL. Returns the updated document.
func (s *DocumentService) CreateVersion(ctx context.Context, id, fileURL string) (*Document, error) {
	body := map[string]string{"file_url": fileURL}
	var doc Document
	if err := s.c.post(ctx, "/api/v1/documents/"+url.PathEscape(id)+"/versions", body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListVersions returns the retained version history, newest first.
func (s *DocumentService) ListVersions(ctx context.Context, id string) ([]DocumentVersion, error) {
	var resp struct {
		Versions []DocumentVersion `json:"versions"`
	}
	if err := s.c.get(ctx, "/api/v1/documents/"+url.PathEscape(id)+"/versions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Versions, nil
}

// Delete soft-deletes a document by ID.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/documents/"+url.PathEscape(id), nil, nil)
}

// LogAccess records an access (view, download, share, delete) of a document.
func (s *DocumentService) LogAccess(ctx context.Context, id, accessType string) (*DocumentAccessLogEntry, error) {
	body := map[string]string{"access_type": accessType}
	var entry DocumentAccessLogEntry
	if err := s.c.post(ctx, "/api/v1/documents/"+url.PathEscape(id)+"/access", body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListAccessLogs returns the most recent access log entries for a document.
func (s *DocumentService) ListAccessLogs(ctx context.Context, id string, limit int) ([]DocumentAccessLogEntry, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		AccessLog []DocumentAccessLogEntry `json:"access_log"`
	}
	if err := s.c.get(ctx, "/api/v1/documents/"+url.PathEscape(id)+"/access", params, &resp); err != nil {
		return nil, err
	}
	return resp.AccessLog, nil
}
