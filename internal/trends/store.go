package trends

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trendlens/trendlens/internal/common"
)

var (
	// ErrDatasetMissing reports that a category has no trend-phase dataset
	// file on disk.
	ErrDatasetMissing = errors.New("trends: dataset file not found")
	// ErrDatasetEmpty reports that a dataset file exists but has no rows.
	ErrDatasetEmpty = errors.New("trends: dataset has no rows")
)

const datasetSuffix = "_keyword_trend_phases.csv"

// Store resolves per-category trend-phase datasets. Datasets are loaded on
// first access and cached for the process lifetime.
type Store struct {
	dir   string
	cache *datasetCache
}

type Option func(*Store)

// WithCacheSize bounds the number of cached category datasets.
func WithCacheSize(size int) Option {
	return func(s *Store) {
		s.cache = newDatasetCache(size)
	}
}

func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:   dir,
		cache: newDatasetCache(32),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// DatasetPath returns the file a category's records are read from. The
// category name itself is the filename fragment.
func (s *Store) DatasetPath(category string) string {
	return filepath.Join(s.dir, category+datasetSuffix)
}

// Records returns the trend rows for a category, loading the dataset on the
// first call. The returned slice is shared and must not be mutated.
func (s *Store) Records(category string) ([]KeywordTrendRecord, error) {
	if records, ok := s.cache.Get(category); ok {
		return records, nil
	}
	records, err := s.load(category)
	if err != nil {
		return nil, err
	}
	s.cache.Set(category, records)
	return records, nil
}

func (s *Store) load(category string) ([]KeywordTrendRecord, error) {
	logger := common.Logger()
	path := s.DatasetPath(category)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("trends: dataset missing", "category", category, "path", path)
			return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, path)
		}
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetEmpty, path)
		}
		return nil, fmt.Errorf("read dataset header %s: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"keyword", "phase", "velocity", "engagement_rate"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("dataset %s: missing column %q", path, required)
		}
	}

	var records []KeywordTrendRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %s: %w", path, err)
		}
		velocity, err := strconv.ParseFloat(strings.TrimSpace(row[columns["velocity"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: bad velocity %q: %w", path, row[columns["velocity"]], err)
		}
		engagement, err := strconv.ParseFloat(strings.TrimSpace(row[columns["engagement_rate"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: bad engagement_rate %q: %w", path, row[columns["engagement_rate"]], err)
		}
		records = append(records, KeywordTrendRecord{
			Keyword:        strings.TrimSpace(row[columns["keyword"]]),
			Phase:          Phase(strings.TrimSpace(row[columns["phase"]])),
			Velocity:       velocity,
			EngagementRate: engagement,
		})
	}
	if len(records) == 0 {
		logger.Warn("trends: dataset empty", "category", category, "path", path)
		return nil, fmt.Errorf("%w: %s", ErrDatasetEmpty, path)
	}
	logger.Debug("trends: dataset loaded", "category", category, "rows", len(records))
	return records, nil
}
