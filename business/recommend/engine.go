package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"cineMatch/business/catalog"
	"cineMatch/domain"
)

var (
	ErrInvalidWeights = errors.New("weights must be finite and not negative")
	ErrIndexMismatch  = errors.New("index was built for a different catalog")
)

// NotFoundError reports a title that does not resolve to any catalog movie.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie %q not found in catalog", e.Title)
}

func (e *NotFoundError) Unwrap() error {
	return catalog.ErrMovieNotFound
}

// Engine scores one catalog against its fitted index.
type Engine struct {
	cat *catalog.Catalog
	idx *Index
	cfg Config
}

func NewEngine(cat *catalog.Catalog, idx *Index, cfg Config) (*Engine, error) {
	if cat == nil || idx == nil || cat.Len() != idx.Size ||
		idx.Keywords.Len() != idx.Size || idx.Genres.Len() != idx.Size {
		return nil, ErrIndexMismatch
	}
	if cfg.MaxResults < 1 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.DefaultResults < 1 {
		cfg.DefaultResults = defaultResults
	}
	return &Engine{cat: cat, idx: idx, cfg: cfg}, nil
}

// Recommend returns up to n movies most similar to title, best first.
// The source movie is never part of the result.
func (e *Engine) Recommend(title string, w domain.Weights, n int) ([]domain.Recommendation, error) {
	if err := validateWeights(w); err != nil {
		return []domain.Recommendation{}, err
	}

	row, ok := e.cat.IndexOfTitle(title)
	if !ok {
		return []domain.Recommendation{}, &NotFoundError{Title: title}
	}

	n = e.ResultCount(n)

	wk, wg := normalizeWeights(w)
	keywordSim := e.idx.Keywords.CosineRow(row)
	genreSim := e.idx.Genres.CosineRow(row)

	scores := make([]float64, e.cat.Len())
	candidates := make([]int, 0, e.cat.Len())
	for i := range scores {
		scores[i] = clamp01(wk*keywordSim[i] + wg*genreSim[i])
		if i != row {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]domain.Recommendation, 0, len(candidates))
	for _, i := range candidates {
		out = append(out, assemble(e.cat.Movie(i), scores[i], keywordSim[i], genreSim[i], e.cfg))
	}

	return out, nil
}

// ResultCount applies the default and the cap to a requested result count.
func (e *Engine) ResultCount(n int) int {
	if n < 1 {
		return e.cfg.DefaultResults
	}
	if n > e.cfg.MaxResults {
		return e.cfg.MaxResults
	}
	return n
}

func validateWeights(w domain.Weights) error {
	for _, v := range []float64{w.Keywords, w.Genres, w.Overview, w.Numeric} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidWeights
		}
	}
	return nil
}

// normalizeWeights scales the active dimensions to sum to 1. Overview and
// numeric similarities are all zero, so their weights never contribute.
func normalizeWeights(w domain.Weights) (keywords, genres float64) {
	sum := w.Keywords + w.Genres
	if sum == 0 {
		return 0.5, 0.5
	}
	return w.Keywords / sum, w.Genres / sum
}
