package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/trendlens/trendlens/internal/common"
	"github.com/trendlens/trendlens/internal/matcher"
	"github.com/trendlens/trendlens/internal/trends"
)

type checkerRequest struct {
	Keyword string `json:"keyword"`
}

type checkerResponse struct {
	UserKeyword           string       `json:"user_keyword"`
	MatchedCategory       string       `json:"matched_category"`
	CategorySimilarity    float64      `json:"category_similarity"`
	MatchedKeyword        string       `json:"matched_keyword"`
	KeywordSimilarity     float64      `json:"keyword_similarity"`
	Phase                 trends.Phase `json:"phase"`
	Velocity              float64      `json:"velocity"`
	EngagementRate        float64      `json:"engagement_rate"`
	VelocityDescription   string       `json:"velocity_description"`
	EngagementDescription string       `json:"engagement_description"`
	PhaseDescription      string       `json:"phase_description"`
	FutureTrend           string       `json:"future_trend"`
	Insights              []string     `json:"insights"`
	Recommendations       []string     `json:"recommendations"`
}

func (s *Server) handleKeywordChecker(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req checkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("Keyword is required"))
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("Keyword cannot be empty"))
		return
	}

	match, err := s.matcher.FindBestMatch(r.Context(), req.Keyword)
	if err != nil {
		var dataErr *matcher.CategoryDataError
		switch {
		case errors.Is(err, matcher.ErrEmptyKeyword):
			writeError(w, http.StatusBadRequest, fmt.Errorf("Keyword cannot be empty"))
		case errors.Is(err, matcher.ErrNoCategories):
			writeError(w, http.StatusServiceUnavailable, fmt.Errorf("No category data available"))
		case errors.As(err, &dataErr):
			message := fmt.Sprintf("Data file not found for category: %s", dataErr.Category)
			if errors.Is(dataErr.Err, trends.ErrDatasetEmpty) {
				message = fmt.Sprintf("No keyword data found for category: %s", dataErr.Category)
			}
			logger.Warn("api: keyword checker partial failure", "category", dataErr.Category, "error", dataErr.Err)
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error":               message,
				"category":            dataErr.Category,
				"category_similarity": round3(dataErr.Similarity),
			})
		default:
			writeError(w, http.StatusInternalServerError, fmt.Errorf("Internal server error: %v", err))
		}
		return
	}

	analysis := s.generator.Analyze(r.Context(), match)
	writeJSON(w, http.StatusOK, checkerResponse{
		UserKeyword:           match.UserKeyword,
		MatchedCategory:       match.Category,
		CategorySimilarity:    round3(match.CategorySimilarity),
		MatchedKeyword:        match.Keyword,
		KeywordSimilarity:     round3(match.KeywordSimilarity),
		Phase:                 match.Record.Phase,
		Velocity:              match.Record.Velocity,
		EngagementRate:        match.Record.EngagementRate,
		VelocityDescription:   fmt.Sprintf("%.1f mentions per month (past 3 months)", match.Record.Velocity),
		EngagementDescription: fmt.Sprintf("Popularity score: %.3f", match.Record.EngagementRate),
		PhaseDescription:      trends.DescribePhase(match.Record.Phase),
		FutureTrend:           analysis.FutureTrend,
		Insights:              analysis.Insights,
		Recommendations:       analysis.Recommendations,
	})
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
