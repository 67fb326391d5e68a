package api

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/trendlens/trendlens/internal/common"
	"github.com/trendlens/trendlens/internal/corpus"
	"github.com/trendlens/trendlens/internal/insight"
	"github.com/trendlens/trendlens/internal/matcher"
)

type Server struct {
	router    chi.Router
	snapshot  *corpus.Snapshot
	matcher   *matcher.Matcher
	generator *insight.Generator
}

// Config carries the server-level settings the handlers do not derive from
// the snapshot.
type Config struct {
	AllowedOrigins []string
}

func NewServer(snapshot *corpus.Snapshot, m *matcher.Matcher, generator *insight.Generator, cfg Config) *Server {
	logger := common.Logger()
	srv := &Server{
		router:    chi.NewRouter(),
		snapshot:  snapshot,
		matcher:   m,
		generator: generator,
	}
	srv.routes(cfg)
	logger.Info("api: server ready", "categories", len(snapshot.Categories))
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(cfg Config) {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Get("/v1/logs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"logs": common.LogEntries()})
	})

	s.router.Get("/api/categories", s.handleCategories)
	s.router.Get("/api/trending-keywords", s.handleTrendingKeywords)
	s.router.Get("/api/metrics", s.handleMetrics)
	s.router.Get("/api/category-breakdown", s.handleCategoryBreakdown)
	s.router.Get("/api/csv-data", s.handleCSVData)
	s.router.Get("/api/csv-data/{category}", s.handleCSVCategoryData)
	s.router.Get("/api/keyword-trends-by-category", s.handleKeywordTrendsByCategory)
	s.router.Get("/api/trend-analysis", s.handleTrendAnalysis)
	s.router.Get("/api/trend-summary", s.handleTrendSummary)
	s.router.Get("/api/growth-chart", s.handleGrowthChart)
	s.router.Post("/api/keyword-checker", s.handleKeywordChecker)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
