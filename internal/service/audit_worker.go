package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/metrics"
	"github.com/coverdesk/coverdesk/internal/models"
)

// AuditJob represents a single audit entry to be recorded.
type AuditJob struct {
	Action     string
	EntityType string
	EntityID   string
	Actor      models.Actor
	Changes    map[string]any
	Status     string
}

// AuditEnqueuer enqueues audit jobs for asynchronous writing.
type AuditEnqueuer interface {
	Enqueue(job *AuditJob)
}

// AuditWorker buffers audit entries and writes them via a single worker goroutine.
type AuditWorker struct {
	auditor Auditor
	log     *logrus.Logger
	jobs    chan *AuditJob
}

// NewAuditWorker creates an AuditWorker with the given queue capacity.
func NewAuditWorker(auditor Auditor, log *logrus.Logger, queueSize int) *AuditWorker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	return &AuditWorker{
		auditor: auditor,
		log:     log,
		jobs:    make(chan *AuditJob, queueSize),
	}
}

// Enqueue adds an audit job. Non-blocking; drops the job if the queue is full.
func (w *AuditWorker) Enqueue(job *AuditJob) {
	select {
	case w.jobs <- job:
		metrics.AuditQueueDepth.Set(float64(len(w.jobs)))
	default:
		metrics.AuditDropped.Inc()
		w.log.WithField("action", job.Action).Warn("audit queue full, dropping entry")
	}
}

// Run processes audit jobs until the context is cancelled, then drains remaining jobs.
func (w *AuditWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case job := <-w.jobs:
			w.process(job)
		}
	}
}

func (w *AuditWorker) drain() {
	for {
		select {
		case job := <-w.jobs:
			w.process(job)
		default:
			return
		}
	}
}

func (w *AuditWorker) process(job *AuditJob) {
	metrics.AuditQueueDepth.Set(float64(len(w.jobs)))

	err := w.auditor.RecordAudit(context.Background(), models.AuditEntry{
		Action:     job.Action,
		EntityType: job.EntityType,
		EntityID:   job.EntityID,
		UserID:     job.Actor.ID,
		Changes:    job.Changes,
		IPAddress:  job.Actor.IPAddress,
		UserAgent:  job.Actor.UserAgent,
		Status:     job.Status,
	})
	if err != nil {
		w.log.WithError(err).Warn("audit record failed")
	}
}

// auditAsync enqueues an audit entry via the AuditWorker (best-effort, non-blocking).
func auditAsync(worker AuditEnqueuer, actor models.Actor, action, entityType, entityID string, changes map[string]any) {
	if worker == nil {
		return
	}
	worker.Enqueue(&AuditJob{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Actor:      actor,
		Changes:    changes,
	})
}
