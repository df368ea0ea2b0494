// Command coverdesk runs the agency portal HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/coverdesk/coverdesk/internal/api"
	"github.com/coverdesk/coverdesk/internal/config"
	"github.com/coverdesk/coverdesk/internal/db"
	"github.com/coverdesk/coverdesk/internal/db/migrations"
	"github.com/coverdesk/coverdesk/internal/dbpool"
	"github.com/coverdesk/coverdesk/internal/service"
	"github.com/coverdesk/coverdesk/internal/store"
	"github.com/coverdesk/coverdesk/internal/ws"
)

// Build-time variables set via ldflags.
var (
	version   = "1.2.0"
	commit    = ""
	buildDate = ""
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "coverdesk:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := newLogger(cfg.LogLevel)
	log.WithFields(logrus.Fields{
		"version":        versionString(),
		"schema_version": db.SchemaVersion(),
		"addr":           cfg.Addr(),
	}).Info("starting coverdesk")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	base := store.Base{Pool: pool, Log: log}

	auditWorker := service.NewAuditWorker(store.NewAuditStore(base), log, cfg.AuditQueueSize)
	auditSvc := service.NewAuditService(store.NewAuditStore(base), log)
	documentSvc := service.NewDocumentService(store.NewDocumentStore(base), auditWorker, log)
	leadSvc := service.NewLeadService(store.NewLeadStore(base), auditWorker, log)
	taskSvc := service.NewTaskService(store.NewTaskStore(base), auditWorker, log)
	quoteSvc := service.NewQuoteService(store.NewQuoteStore(base), auditWorker, log)
	proposalSvc := service.NewProposalService(store.NewProposalStore(base), auditWorker, log)
	workflowSvc := service.NewWorkflowService(
		store.NewWorkflowStore(base), service.DefaultActions(log), auditWorker, log)

	if err := workflowSvc.SeedCatalog(ctx); err != nil {
		return fmt.Errorf("seeding workflow catalog: %w", err)
	}

	hub := ws.NewHub(log)

	bridge := db.NewNotifyBridge(log, pool, hub)
	if err := bridge.Start(ctx); err != nil {
		return fmt.Errorf("starting notify bridge: %w", err)
	}

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Pool:        pool,
		Hub:         hub,
		Audit:       auditSvc,
		Documents:   documentSvc,
		Leads:       leadSvc,
		Tasks:       taskSvc,
		Quotes:      quoteSvc,
		Proposals:   proposalSvc,
		Workflows:   workflowSvc,
		AgentLookup: &base,
		CORSOrigins: cfg.CORSOrigins,
		Version:     versionString(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		auditWorker.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		hub.Shutdown()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("coverdesk stopped")
	return nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return version + "-dev"
}
