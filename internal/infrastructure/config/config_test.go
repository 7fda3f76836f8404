package config

import (
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATA_DIR", "")
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("AUDIT_SINKS", "")
		t.Setenv("STORE_TIMEOUT", "")
		t.Setenv("SQLITE_PATH", "")

		cfg := New()
		if cfg.StoreDriver != "json" || cfg.DataDir != "data" || cfg.Port != "8080" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.SQLitePath != filepath.Join("data", "visits.db") {
			t.Fatalf("unexpected sqlite path %q", cfg.SQLitePath)
		}
		if cfg.StoreTimeout != 5*time.Second || !slices.Equal(cfg.AuditSinks, []string{"log"}) {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "SQLite")
		t.Setenv("DATA_DIR", "/srv/visits")
		t.Setenv("SQLITE_PATH", "")
		t.Setenv("STORE_TIMEOUT", "750ms")
		t.Setenv("AUDIT_SINKS", "log, Redis,,http")
		t.Setenv("AUDIT_WORKERS", "4")
		t.Setenv("RATE_LIMIT_RPS", "2.5")

		cfg := New()
		if cfg.StoreDriver != "sqlite" || cfg.SQLitePath != filepath.Join("/srv/visits", "visits.db") {
			t.Fatalf("unexpected store config: %+v", cfg)
		}
		if cfg.StoreTimeout != 750*time.Millisecond || cfg.AuditWorkers != 4 || cfg.RateLimitRPS != 2.5 {
			t.Fatalf("unexpected values: %+v", cfg)
		}
		if !slices.Equal(cfg.AuditSinks, []string{"log", "redis", "http"}) {
			t.Fatalf("unexpected sinks %v", cfg.AuditSinks)
		}
	})

	t.Run("invalid numbers fall back", func(t *testing.T) {
		t.Setenv("AUDIT_QUEUE_SIZE", "lots")
		t.Setenv("STORE_TIMEOUT", "-1s")

		cfg := New()
		if cfg.AuditQueueSize != 256 || cfg.StoreTimeout != 5*time.Second {
			t.Fatalf("unexpected fallbacks: %+v", cfg)
		}
	})
}
