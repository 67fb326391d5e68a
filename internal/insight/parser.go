package insight

import (
	"strings"

	"github.com/trendlens/trendlens/internal/common"
)

// Parser thresholds. Lines shorter than these are treated as noise rather
// than content; the values come from the upstream heuristics and are kept
// as-is.
const (
	minSentenceLen = 15
	minBulletLen   = 10
)

// lowInfoTrendTemplate marks a trend sentence the model sometimes echoes back
// verbatim; it carries no information and is replaced by the quality gate.
const lowInfoTrendTemplate = "based on current metrics, expect continued trend evolution"

type sectionState int

const (
	sectionNone sectionState = iota
	sectionTrend
	sectionInsights
	sectionRecommendations
)

// Parse converts free-form model output into a structured Analysis. It never
// fails: malformed, truncated, or empty input still yields a non-empty trend
// sentence and exactly three insights and recommendations.
func Parse(raw string) (analysis Analysis) {
	defer func() {
		if r := recover(); r != nil {
			common.Logger().Error("insight: response parsing panicked", "panic", r)
			analysis = parseFailureAnalysis()
		}
	}()
	return parseSections(raw)
}

func parseSections(raw string) Analysis {
	cleaned := strings.ReplaceAll(raw, "*", "")
	var (
		state           = sectionNone
		futureTrend     string
		insights        []string
		recommendations []string
	)
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if next, isTag := detectSection(line); isTag {
			state = next
			continue
		}
		switch state {
		case sectionTrend:
			if futureTrend == "" && len(line) > minSentenceLen && !strings.HasPrefix(line, "-") {
				futureTrend = line
			}
		case sectionInsights:
			insights = extractItem(line, insights)
		case sectionRecommendations:
			recommendations = extractItem(line, recommendations)
		}
	}

	// Quality gate: replace low-information trend sentences and top up
	// short sections so the structural contract always holds.
	if futureTrend == "" || strings.Contains(strings.ToLower(futureTrend), lowInfoTrendTemplate) {
		futureTrend = trendSentenceFor(raw)
	}
	if len(insights) < 2 {
		insights = topUp(insights, defaultInsights)
	}
	if len(recommendations) < 2 {
		recommendations = topUp(recommendations, defaultRecommendations)
	}
	if len(insights) > 3 {
		insights = insights[:3]
	}
	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return Analysis{FutureTrend: futureTrend, Insights: insights, Recommendations: recommendations}
}

// detectSection reports whether the line is a section tag. Tag lines switch
// state and contribute no content themselves.
func detectSection(line string) (sectionState, bool) {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "future trend"):
		return sectionTrend, true
	case strings.Contains(lower, "key insight") || strings.Contains(lower, "insights:"):
		return sectionInsights, true
	case strings.Contains(lower, "recommend"):
		return sectionRecommendations, true
	}
	return sectionNone, false
}

// extractItem applies the shared bullet/prose rules for the insights and
// recommendations sections.
func extractItem(line string, items []string) []string {
	if strings.HasPrefix(line, "-") {
		item := strings.TrimSpace(line[1:])
		if len(item) > minBulletLen {
			items = append(items, item)
		}
		return items
	}
	lower := strings.ToLower(line)
	if len(items) < 3 && len(line) > minSentenceLen &&
		!strings.Contains(lower, "insight") && !strings.Contains(lower, "recommendation") {
		items = append(items, line)
	}
	return items
}

// trendSentenceFor picks a canned forward-looking sentence by searching the
// raw response for a phase keyword, in fixed priority order.
func trendSentenceFor(raw string) string {
	lower := strings.ToLower(raw)
	for _, candidate := range phaseTrendSentences {
		if strings.Contains(lower, candidate.marker) {
			return candidate.sentence
		}
	}
	return genericTrendSentence
}

func topUp(items []string, defaults []string) []string {
	for _, item := range defaults {
		if len(items) >= 3 {
			break
		}
		items = append(items, item)
	}
	return items
}
