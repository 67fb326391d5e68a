package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRENDLENS_ADDR", "")
	t.Setenv("TRENDLENS_DATA_DIR", "")
	t.Setenv("TRENDLENS_ALLOWED_ORIGINS", "")
	t.Setenv("LLM_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":5000" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.DataDir != "data" {
		t.Fatalf("unexpected data dir: %q", cfg.DataDir)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatalf("expected default origins")
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.LLMTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRENDLENS_ADDR", ":8080")
	t.Setenv("TRENDLENS_DATA_DIR", "/srv/corpus")
	t.Setenv("TRENDLENS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("LLM_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DataDir != "/srv/corpus" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.LLMTimeout != 45*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.LLMTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed LLM_TIMEOUT")
	}
	t.Setenv("LLM_TIMEOUT", "-5s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive LLM_TIMEOUT")
	}
}
