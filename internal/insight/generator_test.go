package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/trendlens/trendlens/internal/llm"
	"github.com/trendlens/trendlens/internal/matcher"
	"github.com/trendlens/trendlens/internal/trends"
)

type mockProvider struct {
	reply  string
	err    error
	prompt string
}

func (m *mockProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	if len(messages) > 0 {
		m.prompt = messages[len(messages)-1].Content
	}
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockProvider) Embed(ctx context.Context, input []string) ([][]float32, error) {
	return nil, errors.New("not implemented")
}

func (m *mockProvider) Name() string { return "mock" }

func sampleMatch() matcher.MatchResult {
	return matcher.MatchResult{
		UserKeyword:        "dewy glow serum",
		Category:           "Skincare_&_Anti-Aging",
		CategorySimilarity: 0.873,
		Keyword:            "hyaluronic acid",
		KeywordSimilarity:  0.912,
		Record: trends.KeywordTrendRecord{
			Keyword:        "hyaluronic acid",
			Phase:          trends.PhaseGrowing,
			Velocity:       12.3,
			EngagementRate: 0.045,
		},
	}
}

func TestAnalyzeWithoutProvider(t *testing.T) {
	g := NewGenerator(nil, time.Second)
	analysis := g.Analyze(context.Background(), sampleMatch())
	want := serviceUnavailableAnalysis()
	if analysis.FutureTrend != want.FutureTrend {
		t.Fatalf("unexpected trend: %q", analysis.FutureTrend)
	}
	if len(analysis.Insights) != 3 || len(analysis.Recommendations) != 3 {
		t.Fatalf("degraded analysis not fully populated: %+v", analysis)
	}
}

func TestAnalyzeProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream 500")}
	g := NewGenerator(provider, time.Second)
	analysis := g.Analyze(context.Background(), sampleMatch())
	want := serviceFailedAnalysis()
	if analysis.FutureTrend != want.FutureTrend {
		t.Fatalf("unexpected trend: %q", analysis.FutureTrend)
	}
	// The call-failed family is distinct from the unconfigured family.
	if analysis.FutureTrend == serviceUnavailableAnalysis().FutureTrend {
		t.Fatalf("provider error must not produce the unconfigured fallback")
	}
}

type slowProvider struct{}

func (slowProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (slowProvider) Embed(ctx context.Context, input []string) ([][]float32, error) {
	return nil, errors.New("not implemented")
}

func (slowProvider) Name() string { return "slow" }

func TestAnalyzeTimeout(t *testing.T) {
	g := NewGenerator(slowProvider{}, 10*time.Millisecond)
	analysis := g.Analyze(context.Background(), sampleMatch())
	if analysis.FutureTrend != serviceFailedAnalysis().FutureTrend {
		t.Fatalf("timeout must produce the call-failed fallback, got %q", analysis.FutureTrend)
	}
}

func TestAnalyzeParsesProviderReply(t *testing.T) {
	provider := &mockProvider{reply: `FUTURE TREND:
Hydration-led formulations will dominate skincare launches this quarter.

KEY INSIGHTS:
- Searches pair the ingredient with barrier-repair claims
- Engagement is highest among skincare-first audiences
- Velocity outpaces the category median by a wide margin

RECOMMENDATIONS:
- Lead product messaging with hydration benefits
- Bundle with complementary barrier-repair ingredients
- Time campaign pushes to the current growth window
`}
	g := NewGenerator(provider, time.Second)
	analysis := g.Analyze(context.Background(), sampleMatch())
	if analysis.FutureTrend != "Hydration-led formulations will dominate skincare launches this quarter." {
		t.Fatalf("unexpected trend: %q", analysis.FutureTrend)
	}
	if len(analysis.Insights) != 3 || len(analysis.Recommendations) != 3 {
		t.Fatalf("reply not fully parsed: %+v", analysis)
	}
}

func TestPromptContainsMatchData(t *testing.T) {
	provider := &mockProvider{reply: "FUTURE TREND:\nSteady growth expected across the segment.\n"}
	g := NewGenerator(provider, time.Second)
	g.Analyze(context.Background(), sampleMatch())

	for _, want := range []string{
		`"dewy glow serum"`,
		`"Skincare & Anti-Aging"`, // underscores become spaces
		`"hyaluronic acid"`,
		"Growing",
		"12.3 mentions/month",
		"0.0450",
		"FUTURE TREND:",
		"KEY INSIGHTS:",
		"RECOMMENDATIONS:",
	} {
		if !strings.Contains(provider.prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, provider.prompt)
		}
	}
}
