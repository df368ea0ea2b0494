package service

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func TestAuditWorker_ProcessesJob(t *testing.T) {
	auditor := &mockAuditor{}

	aw := NewAuditWorker(auditor, testLogger(), 10)
	ctx, cancel := context.WithCancel(context.Background())
	go aw.Run(ctx)

	aw.Enqueue(&AuditJob{
		Action:     "CREATE_LEAD",
		EntityType: "lead",
		EntityID:   "LEAD-1",
		Actor:      actorFor("agent-1"),
	})

	time.Sleep(50 * time.Millisecond)
	cancel()

	calls := auditor.getCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 audit call, got %d", len(calls))
	}
	if calls[0].Action != "CREATE_LEAD" {
		t.Errorf("action = %q, want %q", calls[0].Action, "CREATE_LEAD")
	}
	if calls[0].UserID != "agent-1" {
		t.Errorf("user_id = %q, want %q", calls[0].UserID, "agent-1")
	}
}

func TestAuditWorker_DropsWhenFull(t *testing.T) {
	auditor := &mockAuditor{}

	// Queue size 2, don't start the worker so it can't drain.
	aw := NewAuditWorker(auditor, testLogger(), 2)

	// Fill the queue.
	aw.Enqueue(&AuditJob{Action: "a"})
	aw.Enqueue(&AuditJob{Action: "b"})

	// This should be dropped (non-blocking).
	done := make(chan struct{})
	go func() {
		aw.Enqueue(&AuditJob{Action: "c"})
		close(done)
	}()

	select {
	case <-done:
		// Good, didn't block.
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked when queue was full")
	}

	// Only 2 in queue.
	if len(aw.jobs) != 2 {
		t.Errorf("queue len = %d, want 2", len(aw.jobs))
	}
}

func TestAuditWorker_StopDrains(t *testing.T) {
	auditor := &mockAuditor{}

	aw := NewAuditWorker(auditor, testLogger(), 100)

	for i := 0; i < 5; i++ {
		aw.Enqueue(&AuditJob{Action: "UPLOAD_DOCUMENT", EntityType: "document"})
	}

	// Run with an already-cancelled context: the worker must drain the
	// queued jobs before returning.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		aw.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if got := len(auditor.getCalls()); got != 5 {
		t.Errorf("drained %d jobs, want 5", got)
	}
}
