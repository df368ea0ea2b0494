// Package models defines data types for the agency portal core.
package models

import "time"

// Audit entry statuses. The enum is closed: other code paths depend on the
// literal values.
const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
)

// AuditEntry is an immutable record of a state-changing operation, kept for
// compliance. Entries are never updated or deleted outside retention purges.
type AuditEntry struct {
	ID         int64          `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	UserID     string         `json:"user_id"`
	Changes    map[string]any `json:"changes,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Actor identifies the authenticated agent performing an operation, with the
// request attribution that gets copied into audit entries.
type Actor struct {
	ID        string
	IPAddress string
	UserAgent string
}

// AuditQueryOpts holds filters for querying the audit log.
type AuditQueryOpts struct {
	EntityType string
	EntityID   string
	Action     string
	Since      *time.Time
	Limit      int
	Offset     int
}
