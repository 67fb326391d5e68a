package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/trendlens/trendlens/internal/api"
	"github.com/trendlens/trendlens/internal/common"
	"github.com/trendlens/trendlens/internal/config"
	"github.com/trendlens/trendlens/internal/corpus"
	"github.com/trendlens/trendlens/internal/insight"
	"github.com/trendlens/trendlens/internal/llm"
	"github.com/trendlens/trendlens/internal/matcher"
	"github.com/trendlens/trendlens/internal/trends"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("trendlens: .env file not loaded", "error", err)
	} else {
		logger.Info("trendlens: environment loaded from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("trendlens: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	dataDir := flag.String("data", cfg.DataDir, "path to the precomputed corpus directory")
	flag.Parse()
	if trimmed := strings.TrimSpace(*addr); trimmed != "" {
		cfg.Addr = trimmed
	}
	if trimmed := strings.TrimSpace(*dataDir); trimmed != "" {
		cfg.DataDir = trimmed
	}

	logger.Info("trendlens: startup initiated", "addr", cfg.Addr, "data", cfg.DataDir)

	provider := llm.NewProvider(ctx)

	snapshot := corpus.Load(cfg.DataDir)

	index := &matcher.Index{}
	if provider != nil {
		index, err = matcher.BuildIndex(ctx, provider, snapshot.Categories)
		if err != nil {
			logger.Error("trendlens: category index build failed, matching disabled", "error", err)
		}
	} else {
		logger.Warn("trendlens: no embedding provider, keyword matching disabled")
	}

	store := trends.NewStore(filepath.Join(cfg.DataDir, "third_layer_data"))
	m := matcher.New(provider, index, store)
	generator := insight.NewGenerator(provider, cfg.LLMTimeout)

	srv := api.NewServer(snapshot, m, generator, api.Config{AllowedOrigins: cfg.AllowedOrigins})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("trendlens: listening", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("trendlens: server exited", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}
}
