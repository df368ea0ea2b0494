package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/dbpool"
)

// StatsHandler serves the portal statistics endpoint.
type StatsHandler struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given dependencies.
func NewStatsHandler(pool *dbpool.Pool, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{pool: pool, log: log}
}

// statsResponse is the JSON payload returned by the stats endpoint.
type statsResponse struct {
	Leads              int `json:"leads"`
	Tasks              int `json:"tasks"`
	Documents          int `json:"documents"`
	Quotes             int `json:"quotes"`
	Proposals          int `json:"proposals"`
	Workflows          int `json:"workflows"`
	WorkflowExecutions int `json:"workflow_executions"`
	AuditEntries       int `json:"audit_entries"`
}

// GetStats handles GET /api/v1/stats — returns aggregate portal statistics.
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	// Read-only transaction so all counts come from a consistent snapshot.
	tx, err := h.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		h.log.WithError(err).Error("stats: begin tx")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		return
	}
	defer tx.Rollback(ctx) //nolint:errcheck // read-only tx, rollback is cleanup.

	var resp statsResponse

	if err := tx.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM leads),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM documents WHERE is_active),
			(SELECT COUNT(*) FROM quotes),
			(SELECT COUNT(*) FROM proposals),
			(SELECT COUNT(*) FROM workflows),
			(SELECT COUNT(*) FROM workflow_executions),
			(SELECT COUNT(*) FROM audit_log)`,
	).Scan(
		&resp.Leads, &resp.Tasks, &resp.Documents,
		&resp.Quotes, &resp.Proposals,
		&resp.Workflows, &resp.WorkflowExecutions,
		&resp.AuditEntries,
	); err != nil {
		h.log.WithError(err).Error("stats: consolidated query")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}
