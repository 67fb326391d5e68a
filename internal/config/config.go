package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config gathers the process-level settings shared by the corpus loader and
// the API server. Values come from the environment; flags in cmd/trendlens
// may override the address and data directory.
type Config struct {
	Addr           string
	DataDir        string
	AllowedOrigins []string
	LLMTimeout     time.Duration
}

const (
	defaultAddr       = ":5000"
	defaultDataDir    = "data"
	defaultLLMTimeout = 30 * time.Second
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"https://loreal-datathon.vercel.app",
	"https://loreal-datathon.onrender.com",
	"https://*.vercel.app",
}

func Load() (Config, error) {
	cfg := Config{
		Addr:       strings.TrimSpace(os.Getenv("TRENDLENS_ADDR")),
		DataDir:    strings.TrimSpace(os.Getenv("TRENDLENS_DATA_DIR")),
		LLMTimeout: defaultLLMTimeout,
	}
	if raw := strings.TrimSpace(os.Getenv("TRENDLENS_ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse LLM_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("LLM_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.LLMTimeout = timeout
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = append([]string(nil), defaultOrigins...)
	}
	if c.LLMTimeout <= 0 {
		c.LLMTimeout = defaultLLMTimeout
	}
}
