package matcher

import (
	"context"
	"fmt"

	"github.com/trendlens/trendlens/internal/common"
)

// Embedder is the minimal contract needed to turn text into vectors. The
// llm.Provider implementations satisfy it.
type Embedder interface {
	Embed(ctx context.Context, input []string) ([][]float32, error)
}

// Index holds the category labels and their embedding vectors, built once at
// startup and read-only afterwards. Index i of the category slice always
// corresponds to index i of the vector slice.
type Index struct {
	categories []string
	vectors    [][]float32
}

// BuildIndex encodes every category label once. An empty label list yields
// an empty index; queries against it report ErrNoCategories instead of
// crashing.
func BuildIndex(ctx context.Context, embedder Embedder, categories []string) (*Index, error) {
	logger := common.Logger()
	if len(categories) == 0 {
		logger.Warn("matcher: no categories to index")
		return &Index{}, nil
	}
	if embedder == nil {
		return &Index{}, fmt.Errorf("matcher: embedder required to build index")
	}
	vectors, err := embedder.Embed(ctx, categories)
	if err != nil {
		return &Index{}, fmt.Errorf("embed categories: %w", err)
	}
	if len(vectors) != len(categories) {
		return &Index{}, fmt.Errorf("matcher: embedding count mismatch: %d categories, %d vectors", len(categories), len(vectors))
	}
	logger.Info("matcher: category index built", "categories", len(categories))
	return &Index{categories: categories, vectors: vectors}, nil
}

func (ix *Index) Empty() bool {
	return ix == nil || len(ix.categories) == 0
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.categories)
}

// Categories returns the indexed labels in their original order.
func (ix *Index) Categories() []string {
	if ix == nil {
		return nil
	}
	out := make([]string, len(ix.categories))
	copy(out, ix.categories)
	return out
}
