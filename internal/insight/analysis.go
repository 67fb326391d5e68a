package insight

// Analysis is the structured forward-looking analysis for a matched keyword.
// Every field is always populated: parsing and generation failures substitute
// canned content rather than returning partial results.
type Analysis struct {
	FutureTrend     string   `json:"future_trend"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
