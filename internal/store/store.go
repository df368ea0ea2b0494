// Package store provides focused, single-concern data access stores for the
// coverdesk portal core.
//
// Each store owns one aggregate (audit, documents, leads, tasks, quotes,
// proposals, workflows) and embeds shared helpers (Pool, logger) via the Base
// struct. Stores never import each other — shared logic lives in this file or
// in dedicated helper files (scan.go).
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// notify sends a pg_notify on the portal_changes channel (best-effort,
// post-commit). The notify bridge forwards payloads to the dashboard feed.
func (b *Base) notify(table, op, entityID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, _ := json.Marshal(map[string]any{ //nolint:errcheck // static keys, cannot fail.
		"table":     table,
		"op":        op,
		"entity_id": entityID,
	})
	if _, err := b.Pool.Exec(ctx, "SELECT pg_notify('portal_changes', $1)", string(payload)); err != nil {
		b.Log.WithError(err).Warn("failed to send " + op + " " + table + " notification")
	}
}

// GetAgentByAPIKey looks up an agent ID by API key hash.
func (b *Base) GetAgentByAPIKey(ctx context.Context, apiKey string) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	hash := sha256.Sum256([]byte(apiKey))
	apiKeyHash := hex.EncodeToString(hash[:])

	var agentID string

	err := b.Pool.QueryRow(ctx, "SELECT id FROM agents WHERE api_key_hash = $1", apiKeyHash).Scan(&agentID)
	if err != nil {
		return "", fmt.Errorf("looking up agent by API key: %w", err)
	}

	return agentID, nil
}
