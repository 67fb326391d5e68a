package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trendlens/trendlens/internal/common"
	"github.com/trendlens/trendlens/internal/llm"
	"github.com/trendlens/trendlens/internal/matcher"
)

const defaultTimeout = 30 * time.Second

// Generator produces the forward-looking analysis for a match result by
// prompting a language model and structuring its reply. Failures never
// propagate: every path returns a fully populated Analysis.
type Generator struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewGenerator accepts a nil provider, which puts the generator in degraded
// mode: every call returns the service-unavailable analysis without a
// network round trip.
func NewGenerator(provider llm.Provider, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{provider: provider, timeout: timeout}
}

func (g *Generator) Analyze(ctx context.Context, match matcher.MatchResult) Analysis {
	logger := common.Logger()
	if g.provider == nil {
		logger.Warn("insight: no provider configured, returning degraded analysis", "keyword", match.UserKeyword)
		return serviceUnavailableAnalysis()
	}
	prompt := buildPrompt(match)
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	text, err := g.provider.Chat(callCtx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Error("insight: generation failed, returning fallback analysis", "keyword", match.UserKeyword, "error", err)
		return serviceFailedAnalysis()
	}
	return Parse(text)
}

func buildPrompt(match matcher.MatchResult) string {
	var b strings.Builder
	b.WriteString("You are a beauty industry trend analyst. Analyze the following keyword data and provide clear, actionable insights.\n\n")
	b.WriteString("KEYWORD DATA:\n")
	fmt.Fprintf(&b, "- User Input: %q\n", match.UserKeyword)
	fmt.Fprintf(&b, "- Best Category Match: %q\n", strings.ReplaceAll(match.Category, "_", " "))
	fmt.Fprintf(&b, "- Similar Keyword: %q\n", match.Keyword)
	fmt.Fprintf(&b, "- Trend Phase: %s\n", match.Record.Phase)
	fmt.Fprintf(&b, "- Velocity: %.1f mentions/month (3-month trend)\n", match.Record.Velocity)
	fmt.Fprintf(&b, "- Engagement Rate: %.4f\n\n", match.Record.EngagementRate)
	b.WriteString(`METRICS EXPLAINED:
- Velocity: Slope of mentions over last 3 months (positive = increasing, negative = decreasing)
- Engagement Rate: Average user interaction score (likes + comments + shares) / views
- Phase Classification:
  * Emerging: Rising mentions, low engagement
  * Growing: Rising mentions, high engagement
  * Peaking: Slowing mentions, high engagement
  * Decaying: Slowing mentions, low engagement

RESPONSE FORMAT:
Provide exactly 3 sections with clean, professional language:

FUTURE TREND:
[One clear sentence about expected trend direction for next 3-6 months based on the metrics]

KEY INSIGHTS:
- [Business insight 1]
- [Business insight 2]
- [Business insight 3]

RECOMMENDATIONS:
- [Actionable recommendation 1]
- [Actionable recommendation 2]
- [Actionable recommendation 3]

Keep language professional, avoid asterisks, and focus on practical business value for beauty brands.
`)
	return b.String()
}
