package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/dbpool"
	"github.com/coverdesk/coverdesk/internal/middleware"
	"github.com/coverdesk/coverdesk/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool
	Hub         *ws.Hub
	Audit       AuditRepository
	Documents   DocumentRepository
	Leads       LeadRepository
	Tasks       TaskRepository
	Quotes      QuoteRepository
	Proposals   ProposalRepository
	Workflows   WorkflowRepository
	AgentLookup middleware.AgentLookup
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, deps.Hub, log, deps.Version)
	audit := NewAuditHandler(deps.Audit, log)
	documents := NewDocumentHandler(deps.Documents, log)
	leads := NewLeadHandler(deps.Leads, log)
	tasks := NewTaskHandler(deps.Tasks, log)
	quotes := NewQuoteHandler(deps.Quotes, log)
	proposals := NewProposalHandler(deps.Proposals, log)
	workflows := NewWorkflowHandler(deps.Workflows, log)
	stats := NewStatsHandler(deps.Pool, log)

	// Health and readiness are unauthenticated.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// All other API routes require authentication.
	bfGuard := middleware.NewBruteForceGuard(ctx, log)
	api.Use(middleware.BruteForceMiddleware(bfGuard))
	api.Use(middleware.AuthMiddleware(middleware.NewCachedAgentLookup(ctx, deps.AgentLookup), log, bfGuard))

	// Audit log.
	api.GET("/audit", audit.Query)
	api.DELETE("/audit", audit.Purge)

	// Documents.
	api.GET("/documents", documents.List)
	api.POST("/documents", documents.Upload)
	api.GET("/documents/:id", documents.Get)
	api.DELETE("/documents/:id", documents.Delete)
	api.GET("/documents/:id/versions", documents.ListVersions)
	api.POST("/documents/:id/versions", documents.CreateVersion)
	api.GET("/documents/:id/access", documents.ListAccessLogs)
	api.POST("/documents/:id/access", documents.LogAccess)

	// Leads.
	api.GET("/leads", leads.List)
	api.POST("/leads", leads.Create)
	api.PUT("/leads/:id/stage", leads.UpdateStage)
	api.GET("/leads/:id/score", leads.Score)

	// Tasks.
	api.GET("/tasks", tasks.List)
	api.POST("/tasks", tasks.Create)

	// Quotes and proposals.
	api.POST("/quotes", quotes.Generate)
	api.POST("/proposals", proposals.Create)

	// Workflows.
	api.GET("/workflows", workflows.List)
	api.GET("/workflows/:id", workflows.Get)
	api.POST("/workflows/:id/trigger", workflows.Trigger)
	api.GET("/workflows/:id/executions", workflows.ListExecutions)
	api.GET("/executions/:id", workflows.GetExecution)

	// Stats.
	api.GET("/stats", stats.GetStats)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins, deps.AgentLookup))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
