package corpus

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trendlens/trendlens/internal/common"
)

const (
	previewReadLimit = 1000
	previewSampleLen = 10
)

// Snapshot is the process-wide read-only corpus loaded once at startup.
// Individual loaders degrade to empty data with a logged error so the
// process can still serve whatever is present.
type Snapshot struct {
	Categories      []string
	CategoryStats   []CategoryStats
	KeywordInsights []CategoryInsights
	Previews        map[string]FilePreview
}

func Load(dataDir string) *Snapshot {
	logger := common.Logger()
	snapshot := &Snapshot{
		Categories:      loadCategories(filepath.Join(dataDir, "outputs", "category.csv")),
		CategoryStats:   loadCategoryStats(filepath.Join(dataDir, "outputs", "category_trends.csv")),
		KeywordInsights: loadKeywordInsights(filepath.Join(dataDir, "outputs", "keyword_trend_insights.json")),
		Previews:        loadPreviews(filepath.Join(dataDir, "second_layer_data")),
	}
	logger.Info("corpus: snapshot loaded",
		"categories", len(snapshot.Categories),
		"stats_rows", len(snapshot.CategoryStats),
		"insight_groups", len(snapshot.KeywordInsights),
		"previews", len(snapshot.Previews),
	)
	return snapshot
}

func loadCategories(path string) []string {
	logger := common.Logger()
	header, rows, err := readCSV(path, 0)
	if err != nil {
		logger.Error("corpus: loading categories failed", "path", path, "error", err)
		return nil
	}
	idx, ok := columnIndex(header, "category")
	if !ok {
		logger.Error("corpus: category column missing", "path", path)
		return nil
	}
	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		if name := strings.TrimSpace(row[idx]); name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}

func loadCategoryStats(path string) []CategoryStats {
	logger := common.Logger()
	header, rows, err := readCSV(path, 0)
	if err != nil {
		logger.Error("corpus: loading category stats failed", "path", path, "error", err)
		return nil
	}
	stats := make([]CategoryStats, 0, len(rows))
	for _, row := range rows {
		stat := CategoryStats{}
		if idx, ok := columnIndex(header, "category"); ok {
			stat.Category = strings.TrimSpace(row[idx])
		}
		if idx, ok := columnIndex(header, "viewCount"); ok {
			stat.ViewCount = parseCount(row[idx])
		}
		if idx, ok := columnIndex(header, "likeCount"); ok {
			stat.LikeCount = parseCount(row[idx])
		}
		if idx, ok := columnIndex(header, "commentCount"); ok {
			stat.CommentCount = parseCount(row[idx])
		}
		if idx, ok := columnIndex(header, "engagement_rate"); ok {
			stat.EngagementRate, _ = strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		}
		stats = append(stats, stat)
	}
	return stats
}

func loadKeywordInsights(path string) []CategoryInsights {
	logger := common.Logger()
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("corpus: loading keyword insights failed", "path", path, "error", err)
		return nil
	}
	var insights []CategoryInsights
	if err := json.Unmarshal(data, &insights); err != nil {
		logger.Error("corpus: parsing keyword insights failed", "path", path, "error", err)
		return nil
	}
	return insights
}

func loadPreviews(dir string) map[string]FilePreview {
	logger := common.Logger()
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		logger.Error("corpus: listing second-layer files failed", "dir", dir, "error", err)
		return nil
	}
	previews := make(map[string]FilePreview, len(paths))
	for _, path := range paths {
		name := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(path), ".csv"), "_", " ")
		header, rows, err := readCSV(path, previewReadLimit)
		if err != nil {
			logger.Error("corpus: loading preview failed", "path", path, "error", err)
			previews[name] = FilePreview{Error: err.Error()}
			continue
		}
		preview := FilePreview{TotalRows: len(rows), Columns: header}
		sampleLen := previewSampleLen
		if len(rows) < sampleLen {
			sampleLen = len(rows)
		}
		preview.SampleData = make([]map[string]string, 0, sampleLen)
		for _, row := range rows[:sampleLen] {
			sample := make(map[string]string, len(header))
			for i, column := range header {
				if i < len(row) {
					sample[column] = row[i]
				}
			}
			preview.SampleData = append(preview.SampleData, sample)
		}
		previews[name] = preview
	}
	return previews
}

// readCSV returns the header and up to limit data rows (0 for no limit).
func readCSV(path string, limit int) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	var rows [][]string
	for limit <= 0 || len(rows) < limit {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func columnIndex(header []string, name string) (int, bool) {
	for i, column := range header {
		if strings.EqualFold(column, name) {
			return i, true
		}
	}
	return 0, false
}

func parseCount(raw string) int64 {
	trimmed := strings.TrimSpace(raw)
	if value, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return value
	}
	// Counts sometimes arrive as floats ("12345.0") in the exported CSVs.
	if value, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int64(value)
	}
	return 0
}
