package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
	if cfg.ShutdownPeriod != 10*time.Second || cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("unexpected durations: %v %v", cfg.ShutdownPeriod, cfg.IdempotencyTTL)
	}
	if cfg.CardBIN != "4" || cfg.CardValidityYears != 3 {
		t.Fatalf("unexpected card defaults: %s %d", cfg.CardBIN, cfg.CardValidityYears)
	}
	if len(cfg.EligibleKeywords) != 0 {
		t.Fatalf("expected no keyword override, got %v", cfg.EligibleKeywords)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("ELIGIBLE_KEYWORDS", "pharmacy,chiropractor")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address() != ":9090" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected lowercased level, got %s", cfg.LogLevel)
	}
	if cfg.ShutdownPeriod != 3*time.Second {
		t.Fatalf("unexpected shutdown period %v", cfg.ShutdownPeriod)
	}
	if len(cfg.EligibleKeywords) != 2 || cfg.EligibleKeywords[1] != "chiropractor" {
		t.Fatalf("unexpected keywords %v", cfg.EligibleKeywords)
	}
}

func TestLoadRequiresBackendsOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL in production")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/hsa")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without REDIS_URL in production")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	if _, err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected duration parse error")
	}
}
