//go:build !integration

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cineMatch/business/catalog"
	"cineMatch/domain"
)

type fakeLoader struct {
	movies []domain.Movie
	err    error
	calls  int
}

func (f *fakeLoader) Load(ctx context.Context) (*catalog.Catalog, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return catalog.New(catalog.PrepareMovies(f.movies), nil, nil), nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]domain.Recommendation
	gets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]domain.Recommendation)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	recs, ok := c.entries[key]
	return recs, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, recs []domain.Recommendation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = recs
	return nil
}

func TestService_RecommendBeforeReload(t *testing.T) {
	svc := NewService(&fakeLoader{movies: sampleMovies()}, nil, DefaultConfig())

	if _, err := svc.Recommend(context.Background(), domain.RecommendationRequest{Title: "Heat", N: 3}); !errors.Is(err, ErrNotReady) {
		t.Errorf("Recommend() error = %v, want ErrNotReady", err)
	}
	if _, err := svc.Info(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Info() error = %v, want ErrNotReady", err)
	}
}

func TestService_Reload(t *testing.T) {
	loader := &fakeLoader{movies: sampleMovies()}
	svc := NewService(loader, nil, DefaultConfig())

	first, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	info, err := svc.Info()
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if info.Version != first.Version || info.Movies != 6 {
		t.Errorf("Info() = %+v, want version %s with 6 movies", info, first.Version)
	}
	if info.VocabularyTerms[DimensionKeywords] == 0 || info.VocabularyTerms[DimensionGenres] == 0 {
		t.Errorf("vocabulary sizes missing: %v", info.VocabularyTerms)
	}

	t.Run("failed reload keeps previous snapshot", func(t *testing.T) {
		loader.err = catalog.ErrEmptyCatalog
		if _, err := svc.Reload(context.Background()); !errors.Is(err, catalog.ErrEmptyCatalog) {
			t.Fatalf("Reload() error = %v, want ErrEmptyCatalog", err)
		}
		if svc.Snapshot() != first {
			t.Errorf("snapshot replaced after failed reload")
		}
		loader.err = nil
	})

	t.Run("successful reload publishes new version", func(t *testing.T) {
		second, err := svc.Reload(context.Background())
		if err != nil {
			t.Fatalf("Reload() error: %v", err)
		}
		if second.Version == first.Version || svc.Snapshot() != second {
			t.Errorf("new snapshot not published")
		}
	})

	t.Run("empty vocabulary fails the build", func(t *testing.T) {
		loader.movies = []domain.Movie{{ID: "x", Title: "X"}}
		if _, err := svc.Reload(context.Background()); !errors.Is(err, ErrEmptyVocabulary) {
			t.Errorf("Reload() error = %v, want ErrEmptyVocabulary", err)
		}
	})
}

func TestService_RecommendUsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(&fakeLoader{movies: sampleMovies()}, cache, DefaultConfig())
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	req := domain.RecommendationRequest{Title: "Heat", Weights: domain.Weights{Keywords: 0.35, Genres: 1}, N: 3}

	first, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("cache has %d entries, want 1", len(cache.entries))
	}

	// a poisoned entry proves the second call is served from the cache
	for k := range cache.entries {
		cache.entries[k] = []domain.Recommendation{{Title: "cached"}}
	}

	second, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(second) != 1 || second[0].Title != "cached" {
		t.Errorf("second call = %v, want cached entry (first was %v)", titles(second), titles(first))
	}

	t.Run("not found results are not cached", func(t *testing.T) {
		_, err := svc.Recommend(context.Background(), domain.RecommendationRequest{Title: "Missing", N: 3})
		if !errors.Is(err, catalog.ErrMovieNotFound) {
			t.Fatalf("Recommend() error = %v, want ErrMovieNotFound", err)
		}
		if len(cache.entries) != 1 {
			t.Errorf("cache has %d entries, want 1", len(cache.entries))
		}
	})
}

func TestService_RecommendCanceledContext(t *testing.T) {
	svc := NewService(&fakeLoader{movies: sampleMovies()}, nil, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Recommend(ctx, domain.RecommendationRequest{Title: "Heat"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}

func TestCacheKey(t *testing.T) {
	w := domain.Weights{Keywords: 0.35, Genres: 1}
	if cacheKey("v1", "HEAT", w, 5) != cacheKey("v1", "heat", w, 5) {
		t.Errorf("cache key should ignore case")
	}
	if cacheKey("v1", " Heat ", w, 5) == cacheKey("v1", "heat", w, 5) {
		t.Errorf("cache key should keep surrounding space")
	}
	if cacheKey("v1", "heat", w, 5) == cacheKey("v2", "heat", w, 5) {
		t.Errorf("cache key should change with snapshot version")
	}
}
