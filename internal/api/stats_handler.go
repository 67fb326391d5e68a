package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/trendlens/trendlens/internal/corpus"
)

// Classification thresholds for the reporting endpoints. A category is
// trending once its average growth clears the threshold in either direction;
// a keyword is "hot" above the hot threshold.
const (
	categoryTrendThreshold = 2.0
	hotKeywordThreshold    = 10.0
)

const trendingKeywordsLimit = 20

var categoryIcons = map[string]string{
	"Beauty Reviews & Brands":            "⭐",
	"General Beauty & Buzzwords":         "🎯",
	"Facial Care & Exercises":            "✨",
	"Hair Coloring & Transformation":     "🎨",
	"Hair Styling & Men's Grooming":      "✂️",
	"Hair Transformations & Makeovers":   "💇",
	"Makeup & Cosmetics":                 "💄",
	"Men's Fashion & Style":              "👔",
	"Skincare & Anti-Aging":              "🧴",
	"Vlogs & Lifestyle":                  "📹",
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.CategoryStats)
}

func (s *Server) handleTrendingKeywords(w http.ResponseWriter, r *http.Request) {
	var all []corpus.KeywordInsight
	for _, group := range s.snapshot.KeywordInsights {
		for _, keyword := range group.Keywords {
			keyword.Category = group.Category
			all = append(all, keyword)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].GrowthRate > all[j].GrowthRate
	})
	if len(all) > trendingKeywordsLimit {
		all = all[:trendingKeywordsLimit]
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	var (
		totalKeywords int
		trendingUp    int
		trendingDown  int
		topGrowth     float64
		topKeyword    = "N/A"
	)
	for _, group := range s.snapshot.KeywordInsights {
		totalKeywords += len(group.Keywords)
		for _, keyword := range group.Keywords {
			switch keyword.Trend {
			case "up":
				trendingUp++
			case "down":
				trendingDown++
			}
			if keyword.GrowthRate > topGrowth {
				topGrowth = keyword.GrowthRate
				topKeyword = keyword.Keyword
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_keywords":  totalKeywords,
		"trending_up":     trendingUp,
		"trending_down":   trendingDown,
		"top_growth_rate": fmt.Sprintf("%.1f%%", topGrowth),
		"top_keyword":     topKeyword,
	})
}

type breakdownEntry struct {
	Name           string  `json:"name"`
	Count          int     `json:"count"`
	Percentage     int     `json:"percentage"`
	Growth         string  `json:"growth"`
	Trend          string  `json:"trend"`
	Icon           string  `json:"icon"`
	ViewCount      int64   `json:"viewCount"`
	LikeCount      int64   `json:"likeCount"`
	CommentCount   int64   `json:"commentCount"`
	EngagementRate float64 `json:"engagement_rate"`
}

func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown := make([]breakdownEntry, 0, len(s.snapshot.CategoryStats))
	for _, stat := range s.snapshot.CategoryStats {
		keywords := s.keywordsFor(stat.Category)
		growth := averageGrowth(keywords)
		trend := "down"
		if growth > 0 {
			trend = "up"
		}
		// Engagement rate scaled to a 0-100 percentage for display.
		percentage := int(stat.EngagementRate * 1000)
		if percentage > 100 {
			percentage = 100
		}
		if percentage < 0 {
			percentage = 0
		}
		breakdown = append(breakdown, breakdownEntry{
			Name:           stat.Category,
			Count:          len(keywords),
			Percentage:     percentage,
			Growth:         signedPercent(growth, growth > 0),
			Trend:          trend,
			Icon:           iconFor(stat.Category),
			ViewCount:      stat.ViewCount,
			LikeCount:      stat.LikeCount,
			CommentCount:   stat.CommentCount,
			EngagementRate: stat.EngagementRate,
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Percentage > breakdown[j].Percentage
	})
	writeJSON(w, http.StatusOK, breakdown)
}

func (s *Server) handleCSVData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.Previews)
}

func (s *Server) handleCSVCategoryData(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "category")
	name := titleCase(strings.ReplaceAll(slug, "-", " "))
	if preview, ok := s.snapshot.Previews[name]; ok {
		writeJSON(w, http.StatusOK, preview)
		return
	}
	writeError(w, http.StatusNotFound, fmt.Errorf("Category not found"))
}

func (s *Server) handleKeywordTrendsByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.KeywordInsights)
}

type analysisKeyword struct {
	Keyword string `json:"keyword"`
	Growth  string `json:"growth"`
	Trend   string `json:"trend"`
	IsHot   bool   `json:"isHot"`
}

type analysisEntry struct {
	Category          string            `json:"category"`
	Trend             string            `json:"trend"`
	Change            string            `json:"change"`
	Icon              string            `json:"icon"`
	Rank              int               `json:"rank"`
	Keywords          []analysisKeyword `json:"keywords"`
	AvgGrowth         float64           `json:"avg_growth"`
	TrendingUpCount   int               `json:"trending_up_count"`
	TrendingDownCount int               `json:"trending_down_count"`
}

func (s *Server) handleTrendAnalysis(w http.ResponseWriter, r *http.Request) {
	var analysis []analysisEntry
	for _, group := range s.snapshot.KeywordInsights {
		if len(group.Keywords) == 0 {
			continue
		}
		avgGrowth := averageGrowth(group.Keywords)
		trend := "stable"
		if avgGrowth > categoryTrendThreshold {
			trend = "up"
		} else if avgGrowth < -categoryTrendThreshold {
			trend = "down"
		}
		var up, down int
		for _, keyword := range group.Keywords {
			switch keyword.Trend {
			case "up":
				up++
			case "down":
				down++
			}
		}
		sorted := append([]corpus.KeywordInsight(nil), group.Keywords...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GrowthRate > sorted[j].GrowthRate
		})
		if len(sorted) > 5 {
			sorted = sorted[:5]
		}
		top := make([]analysisKeyword, 0, len(sorted))
		for _, keyword := range sorted {
			top = append(top, analysisKeyword{
				Keyword: keyword.Keyword,
				Growth:  signedPercent(keyword.GrowthRate, keyword.GrowthRate >= 0),
				Trend:   keyword.Trend,
				IsHot:   keyword.GrowthRate > hotKeywordThreshold,
			})
		}
		analysis = append(analysis, analysisEntry{
			Category:          group.Category,
			Trend:             trend,
			Change:            signedPercent(avgGrowth, avgGrowth >= 0),
			Icon:              iconFor(group.Category),
			Keywords:          top,
			AvgGrowth:         avgGrowth,
			TrendingUpCount:   up,
			TrendingDownCount: down,
		})
	}
	sort.SliceStable(analysis, func(i, j int) bool {
		return analysis[i].AvgGrowth > analysis[j].AvgGrowth
	})
	for i := range analysis {
		analysis[i].Rank = i + 1
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleTrendSummary(w http.ResponseWriter, r *http.Request) {
	var (
		totalCategories = len(s.snapshot.KeywordInsights)
		categoriesUp    int
		categoriesDown  int
		growthRates     []float64
		hotKeywords     int
		highestGrowth   float64
	)
	for _, group := range s.snapshot.KeywordInsights {
		if len(group.Keywords) == 0 {
			continue
		}
		avgGrowth := averageGrowth(group.Keywords)
		growthRates = append(growthRates, avgGrowth)
		if avgGrowth > categoryTrendThreshold {
			categoriesUp++
		} else if avgGrowth < -categoryTrendThreshold {
			categoriesDown++
		}
		for _, keyword := range group.Keywords {
			if keyword.GrowthRate > hotKeywordThreshold {
				hotKeywords++
			}
			if keyword.GrowthRate > highestGrowth {
				highestGrowth = keyword.GrowthRate
			}
		}
	}
	var avgCategoryGrowth float64
	if len(growthRates) > 0 {
		for _, rate := range growthRates {
			avgCategoryGrowth += rate
		}
		avgCategoryGrowth /= float64(len(growthRates))
	}
	var percentUp float64
	if totalCategories > 0 {
		percentUp = float64(categoriesUp) / float64(totalCategories) * 100
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories_trending_up_percentage": fmt.Sprintf("%.0f%%", percentUp),
		"highest_growth":                    signedPercent(highestGrowth, true),
		"hot_keywords_count":                hotKeywords,
		"avg_category_growth":               signedPercent(avgCategoryGrowth, true),
	})
}

type growthPoint struct {
	Month      string `json:"month"`
	Keywords   int    `json:"keywords"`
	Engagement int    `json:"engagement"`
	Reach      int    `json:"reach"`
}

var chartMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// handleGrowthChart serves synthetic monthly points derived from the
// snapshot's keyword growth rates, for the dashboard's growth chart.
func (s *Server) handleGrowthChart(w http.ResponseWriter, r *http.Request) {
	var variation float64
	for _, group := range s.snapshot.KeywordInsights {
		keywords := group.Keywords
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		for _, keyword := range keywords {
			variation += keyword.GrowthRate
		}
	}
	variation /= 10

	chart := make([]growthPoint, 0, len(chartMonths))
	for i, month := range chartMonths {
		base := float64(100 + i*10)
		chart = append(chart, growthPoint{
			Month:      month,
			Keywords:   clampZero(base + variation + float64(i*2)),
			Engagement: clampZero(base*0.8 + variation + float64(i)*1.5),
			Reach:      clampZero(base*1.2 + variation + float64(i*3)),
		})
	}
	writeJSON(w, http.StatusOK, chart)
}

func (s *Server) keywordsFor(category string) []corpus.KeywordInsight {
	for _, group := range s.snapshot.KeywordInsights {
		if group.Category == category {
			return group.Keywords
		}
	}
	return nil
}

func averageGrowth(keywords []corpus.KeywordInsight) float64 {
	if len(keywords) == 0 {
		return 0
	}
	var total float64
	for _, keyword := range keywords {
		total += keyword.GrowthRate
	}
	return total / float64(len(keywords))
}

// signedPercent renders a growth figure with an explicit plus sign when
// positive is true, matching the dashboard's display convention.
func signedPercent(value float64, positive bool) string {
	if positive {
		return fmt.Sprintf("+%.1f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}

func iconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "📊"
}

func clampZero(value float64) int {
	if value < 0 {
		return 0
	}
	return int(value)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
