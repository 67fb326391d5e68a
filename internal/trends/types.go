package trends

// Phase is the lifecycle label assigned to a keyword in the precomputed
// trend-phase datasets.
type Phase string

const (
	PhaseEmerging Phase = "Emerging"
	PhaseGrowing  Phase = "Growing"
	PhasePeaking  Phase = "Peaking"
	PhaseDecaying Phase = "Decaying"
	PhaseStable   Phase = "Stable"
)

// KeywordTrendRecord is one row of a per-category trend-phase dataset.
// Keywords are not guaranteed unique within a dataset; selection is always
// by similarity rank, never by string equality.
type KeywordTrendRecord struct {
	Keyword        string  `json:"keyword"`
	Phase          Phase   `json:"phase"`
	Velocity       float64 `json:"velocity"`
	EngagementRate float64 `json:"engagement_rate"`
}
