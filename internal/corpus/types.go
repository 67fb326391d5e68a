package corpus

// CategoryStats is one row of the precomputed category performance table.
type CategoryStats struct {
	Category       string  `json:"category"`
	ViewCount      int64   `json:"viewCount"`
	LikeCount      int64   `json:"likeCount"`
	CommentCount   int64   `json:"commentCount"`
	EngagementRate float64 `json:"engagement_rate"`
}

// KeywordInsight is one precomputed keyword entry. Category is filled in
// when insights are flattened across categories.
type KeywordInsight struct {
	Keyword    string  `json:"keyword"`
	GrowthRate float64 `json:"growth_rate"`
	Trend      string  `json:"trend"`
	Category   string  `json:"category,omitempty"`
}

// CategoryInsights groups the keyword insights of a single category.
type CategoryInsights struct {
	Category string           `json:"category"`
	Keywords []KeywordInsight `json:"keywords"`
}

// FilePreview summarizes one second-layer CSV file: its shape and the first
// few rows.
type FilePreview struct {
	TotalRows  int                 `json:"total_rows"`
	Columns    []string            `json:"columns"`
	SampleData []map[string]string `json:"sample_data"`
	Error      string              `json:"error,omitempty"`
}
