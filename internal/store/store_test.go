package store_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/dbpool"
	"github.com/coverdesk/coverdesk/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase creates a Base with a fresh test agent, cleaned up after the test.
func setupTestBase(t *testing.T) (_ store.Base, _ string) {
	t.Helper()

	env := getTestEnv(t)
	agentID := "agent-" + uuid.New().String()
	ctx := context.Background()

	apiKey := "test-key-" + agentID
	hash := sha256.Sum256([]byte(apiKey))
	apiKeyHash := hex.EncodeToString(hash[:])

	_, err := env.pool.Exec(ctx,
		"INSERT INTO agents (id, name, email, api_key_hash) VALUES ($1, $2, $3, $4)",
		agentID, fmt.Sprintf("test-agent-%s", agentID[6:14]),
		agentID+"@example.com", apiKeyHash,
	)
	if err != nil {
		t.Fatalf("creating test agent: %v", err)
	}

	t.Cleanup(func() {
		cleanCtx := context.Background()
		// Delete in dependency order: logs and child rows first, agent last.
		env.pool.Exec(cleanCtx, "DELETE FROM document_access_log WHERE accessed_by = $1", agentID)                                               //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM document_versions WHERE uploaded_by = $1", agentID)                                                 //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM documents WHERE uploaded_by = $1", agentID)                                                         //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM leads WHERE agent_id = $1", agentID)                                                                //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM tasks WHERE agent_id = $1", agentID)                                                                //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM quotes WHERE agent_id = $1", agentID)                                                              //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM proposals WHERE agent_id = $1", agentID)                                                           //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM audit_log WHERE user_id = $1", agentID)                                                            //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM workflow_executions WHERE workflow_id LIKE $1 || '%'", agentID)                                     //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM workflows WHERE workflow_id LIKE $1 || '%'", agentID)                                              //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM agents WHERE id = $1", agentID)                                                                    //nolint:errcheck // best-effort cleanup
	})

	base := store.Base{Pool: env.pool, Log: env.log}

	return base, agentID
}
