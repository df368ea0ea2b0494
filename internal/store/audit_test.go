package store_test

import (
	"context"
	"testing"

	"github.com/coverdesk/coverdesk/internal/models"
	"github.com/coverdesk/coverdesk/internal/store"
)

func TestRecordAndQuery(t *testing.T) {
	base, agentID := setupTestBase(t)
	as := store.NewAuditStore(base)
	ctx := context.Background()

	err := as.RecordAudit(ctx, models.AuditEntry{
		Action:     "CREATE_LEAD",
		EntityType: "lead",
		EntityID:   "lead-audit-test-1",
		UserID:     agentID,
		Changes:    map[string]any{"customer_name": "Priya Nair"},
		IPAddress:  "203.0.113.9",
	})
	if err != nil {
		t.Fatalf("RecordAudit: %v", err)
	}

	entries, hasMore, err := as.QueryAudit(ctx, models.AuditQueryOpts{
		EntityType: "lead",
		EntityID:   "lead-audit-test-1",
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("QueryAudit: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("QueryAudit returned %d entries, want 1", len(entries))
	}
	if hasMore {
		t.Error("hasMore = true, want false")
	}

	e := entries[0]
	if e.Action != "CREATE_LEAD" {
		t.Errorf("Action = %q, want %q", e.Action, "CREATE_LEAD")
	}
	if e.UserID != agentID {
		t.Errorf("UserID = %q, want %q", e.UserID, agentID)
	}
	if e.Status != models.AuditStatusSuccess {
		t.Errorf("Status = %q, want %q", e.Status, models.AuditStatusSuccess)
	}
	if e.Changes["customer_name"] != "Priya Nair" {
		t.Errorf("Changes[customer_name] = %v, want Priya Nair", e.Changes["customer_name"])
	}
	if e.IPAddress != "203.0.113.9" {
		t.Errorf("IPAddress = %q, want 203.0.113.9", e.IPAddress)
	}
}

func TestQueryAuditPagination(t *testing.T) {
	base, agentID := setupTestBase(t)
	as := store.NewAuditStore(base)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := as.RecordAudit(ctx, models.AuditEntry{
			Action:     "UPDATE_LEAD_STAGE",
			EntityType: "lead",
			EntityID:   "lead-audit-page",
			UserID:     agentID,
		})
		if err != nil {
			t.Fatalf("RecordAudit: %v", err)
		}
	}

	entries, hasMore, err := as.QueryAudit(ctx, models.AuditQueryOpts{
		EntityID: "lead-audit-page",
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("QueryAudit: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("QueryAudit returned %d entries, want 2", len(entries))
	}
	if !hasMore {
		t.Error("hasMore = false, want true")
	}

	rest, hasMore, err := as.QueryAudit(ctx, models.AuditQueryOpts{
		EntityID: "lead-audit-page",
		Limit:    2,
		Offset:   2,
	})
	if err != nil {
		t.Fatalf("QueryAudit page 2: %v", err)
	}

	if len(rest) != 1 {
		t.Errorf("page 2 returned %d entries, want 1", len(rest))
	}
	if hasMore {
		t.Error("page 2 hasMore = true, want false")
	}
}

func TestPurgeOldEntries(t *testing.T) {
	base, agentID := setupTestBase(t)
	as := store.NewAuditStore(base)
	ctx := context.Background()

	// Insert an entry then backdate it via raw SQL.
	err := as.RecordAudit(ctx, models.AuditEntry{
		Action:     "DELETE_DOCUMENT",
		EntityType: "document",
		EntityID:   "doc-purge-old",
		UserID:     agentID,
	})
	if err != nil {
		t.Fatalf("RecordAudit: %v", err)
	}

	env := getTestEnv(t)
	_, err = env.pool.Exec(ctx,
		"UPDATE audit_log SET created_at = NOW() - INTERVAL '400 days' WHERE user_id = $1 AND entity_id = 'doc-purge-old'",
		agentID)
	if err != nil {
		t.Fatalf("backdating audit entry: %v", err)
	}

	// Also insert a recent entry that should NOT be purged.
	err = as.RecordAudit(ctx, models.AuditEntry{
		Action:     "UPLOAD_DOCUMENT",
		EntityType: "document",
		EntityID:   "doc-purge-new",
		UserID:     agentID,
	})
	if err != nil {
		t.Fatalf("RecordAudit: %v", err)
	}

	purged, err := as.PurgeOldEntries(ctx, 365)
	if err != nil {
		t.Fatalf("PurgeOldEntries: %v", err)
	}

	if purged < 1 {
		t.Errorf("PurgeOldEntries purged %d, want >= 1", purged)
	}

	// Verify the recent entry still exists.
	entries, _, err := as.QueryAudit(ctx, models.AuditQueryOpts{
		EntityID: "doc-purge-new",
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("QueryAudit after purge: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("QueryAudit after purge = %d entries, want 1", len(entries))
	}
}
