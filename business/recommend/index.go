package recommend

import (
	"fmt"
	"time"

	"cineMatch/business/catalog"
	"cineMatch/domain"

	"golang.org/x/sync/errgroup"
)

// Index is the fitted feature space of one catalog. Row i of each matrix is
// movie i of the catalog it was built from.
type Index struct {
	Keywords *Matrix
	Genres   *Matrix
	Size     int
}

// VocabularyTerms reports the fitted vocabulary size per dimension.
func (x *Index) VocabularyTerms() map[string]int {
	return map[string]int{
		DimensionKeywords: x.Keywords.Cols,
		DimensionGenres:   x.Genres.Cols,
	}
}

// BuildIndex fits both vectorizers on movies. The two dimensions are fitted
// concurrently and fail as a whole.
func BuildIndex(movies []domain.Movie, cfg IndexConfig) (*Index, error) {
	if len(movies) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	start := time.Now()

	keywordDocs := make([]string, len(movies))
	genreDocs := make([]string, len(movies))
	for i, m := range movies {
		keywordDocs[i] = m.KeywordsText
		genreDocs[i] = m.GenresText
	}

	idx := &Index{Size: len(movies)}

	var g errgroup.Group
	g.Go(func() error {
		m, err := NewVectorizer(cfg.Keywords).FitTransform(keywordDocs)
		if err != nil {
			return fmt.Errorf("fit %s: %w", DimensionKeywords, err)
		}
		idx.Keywords = m
		return nil
	})
	g.Go(func() error {
		m, err := NewVectorizer(cfg.Genres).FitTransform(genreDocs)
		if err != nil {
			return fmt.Errorf("fit %s: %w", DimensionGenres, err)
		}
		idx.Genres = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	IndexBuildSeconds.Observe(time.Since(start).Seconds())
	for dim, n := range idx.VocabularyTerms() {
		VocabularyTerms.WithLabelValues(dim).Set(float64(n))
	}

	return idx, nil
}
