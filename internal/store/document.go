package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/coverdesk/coverdesk/internal/models"
)

// DocumentStore handles document registry operations: metadata records,
// version counters, soft-delete, and the access log.
type DocumentStore struct {
	Base
}

// NewDocumentStore creates a DocumentStore.
func NewDocumentStore(base Base) *DocumentStore {
	return &DocumentStore{Base: base}
}

// CreateDocument inserts a new document record at version 1 and returns it.
func (s *DocumentStore) CreateDocument(
	ctx context.Context, documentID, uploadedBy string, req models.UploadDocumentRequest,
) (*models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshaling document metadata: %w", err)
	}

	query := `INSERT INTO documents
		(document_id, file_name, file_type, file_size, file_url, entity_type, entity_id, document_type, uploaded_by, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns

	row := s.Pool.QueryRow(ctx, query,
		documentID, req.FileName, req.FileType, req.FileSize, req.FileURL,
		req.EntityType, req.EntityID, req.DocumentType, uploadedBy, metadataJSON,
	)

	d, err := scanDocument(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created document: %w", err)
	}

	s.notify("documents", "insert", d.DocumentID)

	return d, nil
}

// GetDocument returns a single document by its external ID, active or not.
func (s *DocumentStore) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE document_id = $1", documentID)

	d, err := scanDocument(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDocumentNotFound
		}

		return nil, fmt.Errorf("getting document: %w", err)
	}

	return d, nil
}

// ListDocuments returns active documents for an entity, newest upload first.
// Soft-deleted documents are excluded; the rows remain in storage.
func (s *DocumentStore) ListDocuments(
	ctx context.Context, entityType, entityID, documentType string,
) ([]models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := "SELECT " + documentColumns + ` FROM documents
		WHERE entity_type = $1 AND entity_id = $2 AND is_active`
	args := []any{entityType, entityID}

	if documentType != "" {
		query += " AND document_type = $3"
		args = append(args, documentType)
	}

	query += " ORDER BY uploaded_at DESC"

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 16)

	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}

		docs = append(docs, *d)
	}

	return docs, rows.Err()
}

// CreateVersion retains the document's current {version, file_url} in the
// version history, then increments the version counter and replaces the URL.
// Both writes happen in one transaction.
func (s *DocumentStore) CreateVersion(
	ctx context.Context, documentID, newFileURL, uploadedBy string,
) (*models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning version transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	_, err = tx.Exec(ctx, `
		INSERT INTO document_versions (document_id, version, file_url, uploaded_by)
		SELECT document_id, version, file_url, uploaded_by FROM documents WHERE document_id = $1`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("retaining document version: %w", err)
	}

	row := tx.QueryRow(ctx, `
		UPDATE documents SET version = version + 1, file_url = $2, updated_at = NOW()
		WHERE document_id = $1
		RETURNING `+documentColumns,
		documentID, newFileURL,
	)

	d, err := scanDocument(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDocumentNotFound
		}

		return nil, fmt.Errorf("scanning versioned document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing version: %w", err)
	}

	s.notify("documents", "update", documentID)

	return d, nil
}

// ListVersions returns retained prior versions of a document, newest first.
func (s *DocumentStore) ListVersions(ctx context.Context, documentID string) ([]models.DocumentVersion, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, `
		SELECT document_id, version, file_url, uploaded_by, created_at
		FROM document_versions WHERE document_id = $1 ORDER BY version DESC`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing document versions: %w", err)
	}
	defer rows.Close()

	versions := make([]models.DocumentVersion, 0, 8)

	for rows.Next() {
		var v models.DocumentVersion
		if err := rows.Scan(&v.DocumentID, &v.Version, &v.FileURL, &v.UploadedBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning version row: %w", err)
		}

		versions = append(versions, v)
	}

	return versions, rows.Err()
}

// SoftDeleteDocument flips is_active to false. The record stays in storage.
func (s *DocumentStore) SoftDeleteDocument(ctx context.Context, documentID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx,
		"UPDATE documents SET is_active = FALSE, updated_at = NOW() WHERE document_id = $1", documentID)
	if err != nil {
		return fmt.Errorf("soft-deleting document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrDocumentNotFound
	}

	s.notify("documents", "delete", documentID)

	return nil
}

// InsertAccessLog records a single document access. Purely additive: it does
// not touch the document row and does not require the document to exist.
func (s *DocumentStore) InsertAccessLog(ctx context.Context, e models.DocumentAccessLogEntry) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO document_access_log (log_id, document_id, accessed_by, access_type, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.LogID, e.DocumentID, e.AccessedBy, e.AccessType,
		nullable(e.IPAddress), nullable(e.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("inserting access log entry: %w", err)
	}

	return nil
}

// ListAccessLogs returns access log entries for a document, newest first.
func (s *DocumentStore) ListAccessLogs(
	ctx context.Context, documentID string, limit int,
) ([]models.DocumentAccessLogEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.Pool.Query(ctx, `
		SELECT log_id, document_id, accessed_by, access_type, ip_address, user_agent, accessed_at
		FROM document_access_log WHERE document_id = $1
		ORDER BY accessed_at DESC LIMIT $2`,
		documentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing access logs: %w", err)
	}
	defer rows.Close()

	entries := make([]models.DocumentAccessLogEntry, 0, 16)

	for rows.Next() {
		var e models.DocumentAccessLogEntry
		var ip, ua *string

		if err := rows.Scan(&e.LogID, &e.DocumentID, &e.AccessedBy, &e.AccessType, &ip, &ua, &e.AccessedAt); err != nil {
			return nil, fmt.Errorf("scanning access log row: %w", err)
		}

		if ip != nil {
			e.IPAddress = *ip
		}
		if ua != nil {
			e.UserAgent = *ua
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
