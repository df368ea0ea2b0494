package config

import (
	"strings"
	"testing"
)

// setValidEnv sets the minimum environment for a passing Load.
func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/coverdesk")
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3040" {
		t.Errorf("Port = %q, want 3040", cfg.Port)
	}

	if cfg.ListenHost != "127.0.0.1" {
		t.Errorf("ListenHost = %q, want 127.0.0.1", cfg.ListenHost)
	}

	if cfg.AuditQueueSize != 1000 {
		t.Errorf("AuditQueueSize = %d, want 1000", cfg.AuditQueueSize)
	}

	if cfg.Addr() != "127.0.0.1:3040" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadRejectsNonPostgresScheme(t *testing.T) {
	t.Setenv("DATABASE_URL", "mysql://localhost:3306/coverdesk")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-postgres scheme")
	}
}

func TestLoadRejectsRemoteSSLDisable(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.example.com:5432/coverdesk?sslmode=disable")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for sslmode=disable on remote host")
	}
}

func TestLoadRejectsNonLoopbackListenHost(t *testing.T) {
	setValidEnv(t)
	t.Setenv("LISTEN_HOST", "0.0.0.0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-loopback LISTEN_HOST")
	}
}

func TestLoadRejectsWildcardCORS(t *testing.T) {
	setValidEnv(t)
	t.Setenv("CORS_ORIGINS", "*")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for wildcard CORS origin")
	}

	if !strings.Contains(err.Error(), "CORS_ORIGINS") {
		t.Errorf("error %q does not mention CORS_ORIGINS", err)
	}
}

func TestLoadCORSOriginsTrimmed(t *testing.T) {
	setValidEnv(t)
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:3001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:3001" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsBadAuditQueueSize(t *testing.T) {
	setValidEnv(t)
	t.Setenv("AUDIT_QUEUE_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for AUDIT_QUEUE_SIZE=0")
	}
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("super-secret")

	if s.String() != "[REDACTED]" {
		t.Errorf("String() = %q", s.String())
	}

	if s.Value() != "super-secret" {
		t.Errorf("Value() = %q", s.Value())
	}
}
