package insight

import (
	"strings"
	"testing"
)

func TestParseWellFormedResponse(t *testing.T) {
	raw := `FUTURE TREND:
Strong momentum points to sustained growth through the holiday season.

KEY INSIGHTS:
- Engagement is concentrated in short-form video content
- Mentions doubled among creators with under 50k followers
- Comment sentiment skews strongly positive for this keyword

RECOMMENDATIONS:
- Partner with mid-tier creators before rates increase
- Launch tutorial content highlighting application technique
- Reserve budget for a follow-up campaign next quarter
`
	analysis := Parse(raw)
	if analysis.FutureTrend != "Strong momentum points to sustained growth through the holiday season." {
		t.Fatalf("unexpected trend: %q", analysis.FutureTrend)
	}
	wantInsights := []string{
		"Engagement is concentrated in short-form video content",
		"Mentions doubled among creators with under 50k followers",
		"Comment sentiment skews strongly positive for this keyword",
	}
	if len(analysis.Insights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(analysis.Insights))
	}
	for i, want := range wantInsights {
		if analysis.Insights[i] != want {
			t.Fatalf("insight %d = %q, want %q", i, analysis.Insights[i], want)
		}
	}
	if len(analysis.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(analysis.Recommendations))
	}
	if analysis.Recommendations[0] != "Partner with mid-tier creators before rates increase" {
		t.Fatalf("unexpected first recommendation: %q", analysis.Recommendations[0])
	}
}

func TestParseStripsAsterisks(t *testing.T) {
	raw := "**FUTURE TREND:**\n**Growth is expected to continue into next year.**\n"
	analysis := Parse(raw)
	if strings.Contains(analysis.FutureTrend, "*") {
		t.Fatalf("asterisks not stripped: %q", analysis.FutureTrend)
	}
	if analysis.FutureTrend != "Growth is expected to continue into next year." {
		t.Fatalf("unexpected trend: %q", analysis.FutureTrend)
	}
}

func TestParseEmptyInputStillStructured(t *testing.T) {
	analysis := Parse("")
	if analysis.FutureTrend == "" {
		t.Fatalf("expected non-empty trend sentence")
	}
	if len(analysis.Insights) != 3 {
		t.Fatalf("expected 3 topped-up insights, got %d", len(analysis.Insights))
	}
	if len(analysis.Recommendations) != 3 {
		t.Fatalf("expected 3 topped-up recommendations, got %d", len(analysis.Recommendations))
	}
	if analysis.Insights[0] != defaultInsights[0] {
		t.Fatalf("unexpected top-up insight: %q", analysis.Insights[0])
	}
}

func TestParseCapsSectionsAtThree(t *testing.T) {
	var b strings.Builder
	b.WriteString("KEY INSIGHTS:\n")
	for i := 0; i < 6; i++ {
		b.WriteString("- An observation that easily clears the length bar\n")
	}
	analysis := Parse(b.String())
	if len(analysis.Insights) != 3 {
		t.Fatalf("expected insights capped at 3, got %d", len(analysis.Insights))
	}
}

func TestParseKeepsCapturedItemBeforeToppingUp(t *testing.T) {
	raw := "KEY INSIGHTS:\n- A single but perfectly valid observation\n"
	analysis := Parse(raw)
	if len(analysis.Insights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(analysis.Insights))
	}
	if analysis.Insights[0] != "A single but perfectly valid observation" {
		t.Fatalf("captured item lost: %q", analysis.Insights[0])
	}
	if analysis.Insights[1] != defaultInsights[0] {
		t.Fatalf("expected default top-up second, got %q", analysis.Insights[1])
	}
}

func TestParseSkipsShortBullets(t *testing.T) {
	raw := "RECOMMENDATIONS:\n- short\n- Increase posting cadence during peak hours\n"
	analysis := Parse(raw)
	for _, item := range analysis.Recommendations {
		if item == "short" {
			t.Fatalf("short bullet should have been skipped")
		}
	}
	if analysis.Recommendations[0] != "Increase posting cadence during peak hours" {
		t.Fatalf("unexpected first recommendation: %q", analysis.Recommendations[0])
	}
}

func TestParseAcceptsProseItems(t *testing.T) {
	raw := "KEY INSIGHTS:\nAudience interaction is strongest on weekends.\n"
	analysis := Parse(raw)
	if analysis.Insights[0] != "Audience interaction is strongest on weekends." {
		t.Fatalf("prose item not captured: %q", analysis.Insights[0])
	}
}

func TestParseReplacesLowInfoTrend(t *testing.T) {
	raw := "FUTURE TREND:\nBased on current metrics, expect continued trend evolution.\n" +
		"The keyword is clearly peaking according to the data.\n"
	analysis := Parse(raw)
	if strings.Contains(strings.ToLower(analysis.FutureTrend), lowInfoTrendTemplate) {
		t.Fatalf("low-information trend not replaced: %q", analysis.FutureTrend)
	}
	if analysis.FutureTrend != phaseTrendSentences[0].sentence {
		t.Fatalf("expected peaking sentence, got %q", analysis.FutureTrend)
	}
}

func TestParsePhaseKeywordPriority(t *testing.T) {
	// Both markers present; "peaking" wins because it is checked first.
	raw := "the keyword is growing and peaking"
	analysis := Parse(raw)
	if analysis.FutureTrend != phaseTrendSentences[0].sentence {
		t.Fatalf("expected peaking sentence, got %q", analysis.FutureTrend)
	}
}

func TestParseGenericTrendFallback(t *testing.T) {
	analysis := Parse("no phase markers anywhere in this text")
	if analysis.FutureTrend != genericTrendSentence {
		t.Fatalf("expected generic trend sentence, got %q", analysis.FutureTrend)
	}
}

func TestParseTagLinesContributeNoContent(t *testing.T) {
	raw := "KEY INSIGHTS: with trailing words that are long enough to count\n" +
		"- A proper bullet observation for the section\n"
	analysis := Parse(raw)
	if analysis.Insights[0] != "A proper bullet observation for the section" {
		t.Fatalf("tag line leaked into content: %q", analysis.Insights[0])
	}
}
