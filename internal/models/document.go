package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document access types. Closed enumeration.
const (
	AccessTypeView     = "view"
	AccessTypeDownload = "download"
	AccessTypeShare    = "share"
	AccessTypeDelete   = "delete"
)

// validAccessTypes is the set of allowed DocumentAccessLog access types.
var validAccessTypes = map[string]bool{
	AccessTypeView:     true,
	AccessTypeDownload: true,
	AccessTypeShare:    true,
	AccessTypeDelete:   true,
}

// Document is a metadata record for an uploaded file. The file bytes live
// elsewhere; this layer stores the URL only. Documents are soft-deleted:
// IsActive flips to false, the row stays.
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

// DocumentVersion is a retained prior state of a document's file URL, written
// whenever a new version replaces it.
type DocumentVersion struct {
	DocumentID string    `json:"document_id"`
	Version    int       `json:"version"`
	FileURL    string    `json:"file_url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentAccessLogEntry records a single access to a document. Append-only.
type DocumentAccessLogEntry struct {
	LogID      string    `json:"log_id"`
	DocumentID string    `json:"document_id"`
	AccessedBy string    `json:"accessed_by"`
	AccessType string    `json:"access_type"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	AccessedAt time.Time `json:"accessed_at"`
}

// UploadDocumentRequest is the payload for registering an uploaded file.
// File-size and MIME validation are the caller's job; this layer only checks
// the fields it stores.
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

// Validate checks required fields and limits on UploadDocumentRequest.
func (r *UploadDocumentRequest) Validate() error {
	if r.FileName == "" {
		return ErrMissingFileName
	}

	if len(r.FileName) > 512 {
		return ErrFieldTooLong("file_name", 512)
	}

	if r.FileURL == "" {
		return ErrMissingFileURL
	}

	if r.EntityType == "" {
		return ErrMissingEntityType
	}

	if r.EntityID == "" {
		return ErrMissingEntityID
	}

	if r.FileSize < 0 {
		return fmt.Errorf("file_size cannot be negative")
	}

	if r.Metadata != nil {
		data, err := json.Marshal(r.Metadata)
		if err != nil {
			return fmt.Errorf("invalid metadata: %w", err)
		}
		if len(data) > 65536 {
			return ErrFieldTooLong("metadata", 65536)
		}
	}

	return nil
}

// CreateVersionRequest is the payload for replacing a document's file URL.
type CreateVersionRequest struct {
	FileURL string `json:"file_url"`
}

// Validate checks CreateVersionRequest fields.
func (r *CreateVersionRequest) Validate() error {
	if r.FileURL == "" {
		return ErrMissingFileURL
	}

	return nil
}

// LogAccessRequest is the payload for recording a document access.
type LogAccessRequest struct {
	AccessType string `json:"access_type"`
}

// Validate checks the access type against the closed enumeration.
func (r *LogAccessRequest) Validate() error {
	if !validAccessTypes[r.AccessType] {
		return ErrInvalidEnum("access_type", r.AccessType)
	}

	return nil
}
