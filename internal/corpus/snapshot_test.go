package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func fixtureDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "outputs", "category.csv"),
		"category\nSkincare & Anti-Aging\nMakeup & Cosmetics\n\n")
	writeFixture(t, filepath.Join(dir, "outputs", "category_trends.csv"),
		"category,viewCount,likeCount,commentCount,engagement_rate\n"+
			"Skincare & Anti-Aging,1200000,45000,3200,0.041\n"+
			"Makeup & Cosmetics,800000.0,21000,1800,0.028\n")
	writeFixture(t, filepath.Join(dir, "outputs", "keyword_trend_insights.json"),
		`[{"category":"Skincare & Anti-Aging","keywords":[`+
			`{"keyword":"hyaluronic acid","growth_rate":12.4,"trend":"up"},`+
			`{"keyword":"retinol","growth_rate":-3.1,"trend":"down"}]}]`)
	writeFixture(t, filepath.Join(dir, "second_layer_data", "Skincare_Weekly.csv"),
		"week,mentions\n2025-01,340\n2025-02,410\n")
	return dir
}

func TestLoadSnapshot(t *testing.T) {
	snapshot := Load(fixtureDataDir(t))

	if len(snapshot.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", snapshot.Categories)
	}
	if snapshot.Categories[0] != "Skincare & Anti-Aging" {
		t.Fatalf("unexpected first category: %q", snapshot.Categories[0])
	}

	if len(snapshot.CategoryStats) != 2 {
		t.Fatalf("expected 2 stats rows, got %d", len(snapshot.CategoryStats))
	}
	first := snapshot.CategoryStats[0]
	if first.ViewCount != 1200000 || first.LikeCount != 45000 || first.EngagementRate != 0.041 {
		t.Fatalf("unexpected stats row: %+v", first)
	}
	// Float-formatted counts are accepted.
	if snapshot.CategoryStats[1].ViewCount != 800000 {
		t.Fatalf("float count not parsed: %+v", snapshot.CategoryStats[1])
	}

	if len(snapshot.KeywordInsights) != 1 {
		t.Fatalf("expected 1 insight group, got %d", len(snapshot.KeywordInsights))
	}
	keywords := snapshot.KeywordInsights[0].Keywords
	if len(keywords) != 2 || keywords[0].Keyword != "hyaluronic acid" || keywords[0].GrowthRate != 12.4 {
		t.Fatalf("unexpected keywords: %+v", keywords)
	}

	preview, ok := snapshot.Previews["Skincare Weekly"]
	if !ok {
		t.Fatalf("expected preview keyed by spaced filename, have %v", snapshot.Previews)
	}
	if preview.TotalRows != 2 || len(preview.Columns) != 2 {
		t.Fatalf("unexpected preview shape: %+v", preview)
	}
	if preview.SampleData[0]["mentions"] != "340" {
		t.Fatalf("unexpected sample row: %+v", preview.SampleData[0])
	}
}

func TestLoadSnapshotMissingFiles(t *testing.T) {
	snapshot := Load(t.TempDir())
	if len(snapshot.Categories) != 0 {
		t.Fatalf("expected no categories, got %v", snapshot.Categories)
	}
	if len(snapshot.CategoryStats) != 0 || len(snapshot.KeywordInsights) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snapshot)
	}
	if len(snapshot.Previews) != 0 {
		t.Fatalf("expected no previews, got %v", snapshot.Previews)
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12345", 12345},
		{" 42 ", 42},
		{"12345.0", 12345},
		{"junk", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := parseCount(tc.in); got != tc.want {
			t.Fatalf("parseCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
