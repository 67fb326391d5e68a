package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/trendlens/trendlens/internal/common"
	"github.com/trendlens/trendlens/internal/trends"
)

var (
	// ErrEmptyKeyword rejects input that is empty after trimming.
	ErrEmptyKeyword = errors.New("matcher: keyword is empty")
	// ErrNoCategories reports that the category index has no entries.
	ErrNoCategories = errors.New("matcher: no categories available")
)

// CategoryDataError reports a category that matched but whose dataset could
// not be used. The category match info is preserved so callers can still
// surface the partial result.
type CategoryDataError struct {
	Category   string
	Similarity float64
	Err        error
}

func (e *CategoryDataError) Error() string {
	return fmt.Sprintf("category %q: %v", e.Category, e.Err)
}

func (e *CategoryDataError) Unwrap() error {
	return e.Err
}

// MatchResult is the outcome of the two-stage similarity search for one
// request.
type MatchResult struct {
	UserKeyword        string
	Category           string
	CategorySimilarity float64
	Keyword            string
	KeywordSimilarity  float64
	Record             trends.KeywordTrendRecord
}

// Matcher runs the two-stage nearest-neighbor search: categories first, then
// keywords within the matched category's dataset.
type Matcher struct {
	embedder Embedder
	index    *Index
	store    *trends.Store
}

func New(embedder Embedder, index *Index, store *trends.Store) *Matcher {
	return &Matcher{embedder: embedder, index: index, store: store}
}

// FindBestMatch encodes the user keyword once and reuses the vector for both
// matching stages.
func (m *Matcher) FindBestMatch(ctx context.Context, userKeyword string) (MatchResult, error) {
	logger := common.Logger()
	trimmed := strings.TrimSpace(userKeyword)
	if trimmed == "" {
		return MatchResult{}, ErrEmptyKeyword
	}
	if m.index.Empty() {
		return MatchResult{}, ErrNoCategories
	}
	vectors, err := m.embedder.Embed(ctx, []string{trimmed})
	if err != nil {
		return MatchResult{}, fmt.Errorf("embed keyword: %w", err)
	}
	if len(vectors) == 0 {
		return MatchResult{}, fmt.Errorf("embed keyword: no vector returned")
	}
	query := vectors[0]

	category, categorySimilarity, err := m.MatchCategory(query)
	if err != nil {
		return MatchResult{}, err
	}
	logger.Info("matcher: category matched", "keyword", trimmed, "category", category, "similarity", categorySimilarity)

	keyword, keywordSimilarity, record, err := m.MatchKeyword(ctx, query, category)
	if err != nil {
		if errors.Is(err, trends.ErrDatasetMissing) || errors.Is(err, trends.ErrDatasetEmpty) {
			return MatchResult{}, &CategoryDataError{Category: category, Similarity: categorySimilarity, Err: err}
		}
		return MatchResult{}, err
	}
	logger.Info("matcher: keyword matched", "keyword", trimmed, "match", keyword, "similarity", keywordSimilarity)

	return MatchResult{
		UserKeyword:        trimmed,
		Category:           category,
		CategorySimilarity: categorySimilarity,
		Keyword:            keyword,
		KeywordSimilarity:  keywordSimilarity,
		Record:             record,
	}, nil
}

// MatchCategory finds the indexed category closest to the query vector.
func (m *Matcher) MatchCategory(query []float32) (string, float64, error) {
	if m.index.Empty() {
		return "", 0, ErrNoCategories
	}
	idx, similarity := bestMatch(query, m.index.vectors)
	return m.index.categories[idx], similarity, nil
}

// MatchKeyword loads the category's dataset, encodes its keyword column and
// returns the row closest to the query vector.
func (m *Matcher) MatchKeyword(ctx context.Context, query []float32, category string) (string, float64, trends.KeywordTrendRecord, error) {
	records, err := m.store.Records(category)
	if err != nil {
		return "", 0, trends.KeywordTrendRecord{}, err
	}
	keywords := make([]string, len(records))
	for i, record := range records {
		keywords[i] = record.Keyword
	}
	vectors, err := m.embedder.Embed(ctx, keywords)
	if err != nil {
		return "", 0, trends.KeywordTrendRecord{}, fmt.Errorf("embed category keywords: %w", err)
	}
	if len(vectors) != len(keywords) {
		return "", 0, trends.KeywordTrendRecord{}, fmt.Errorf("keyword embedding count mismatch: %d keywords, %d vectors", len(keywords), len(vectors))
	}
	idx, similarity := bestMatch(query, vectors)
	return records[idx].Keyword, similarity, records[idx], nil
}

// bestMatch returns the argmax of cosine similarity. Ties keep the lowest
// index: the comparison is strictly greater-than.
func bestMatch(query []float32, vectors [][]float32) (int, float64) {
	bestIdx := 0
	bestScore := math.Inf(-1)
	for i, vector := range vectors {
		score := cosine(query, vector)
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx, bestScore
}

// cosine is dot(a,b)/(|a|*|b|), defined as 0 when either norm is 0.
func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
