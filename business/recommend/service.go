package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cineMatch/business/catalog"
	"cineMatch/domain"
	"cineMatch/pkg/logger"

	"github.com/google/uuid"
)

var ErrNotReady = errors.New("no catalog snapshot has been built yet")

// Snapshot is one immutable catalog plus the index fitted on it.
type Snapshot struct {
	Version string
	Catalog *catalog.Catalog
	Index   *Index
	Engine  *Engine
	BuiltAt time.Time
}

type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// RecommendationCache stores finished result lists by key. Keys embed the
// snapshot version, so entries never outlive the catalog they were built on.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, key string, recs []domain.Recommendation) error
}

type Service struct {
	loader CatalogLoader
	cache  RecommendationCache
	cfg    Config

	snapshot atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

// NewService wires the service. cache may be nil.
func NewService(loader CatalogLoader, cache RecommendationCache, cfg Config) *Service {
	return &Service{
		loader: loader,
		cache:  cache,
		cfg:    cfg,
	}
}

func (s *Service) Config() Config {
	return s.cfg
}

// Snapshot returns the live snapshot, or nil before the first Reload.
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Reload loads the catalog and fits a new index, then publishes both at
// once. On failure the previous snapshot keeps serving.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	cat, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := BuildIndex(cat.Movies(), s.cfg.Index)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	engine, err := NewEngine(cat, idx, s.cfg)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Version: uuid.NewString(),
		Catalog: cat,
		Index:   idx,
		Engine:  engine,
		BuiltAt: time.Now().UTC(),
	}
	s.snapshot.Store(snap)
	CatalogMovies.Set(float64(cat.Len()))

	logger.Info("catalog snapshot published",
		"version", snap.Version,
		"movies", cat.Len(),
		"keyword_terms", idx.Keywords.Cols,
		"genre_terms", idx.Genres.Cols,
	)

	return snap, nil
}

func (s *Service) Recommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snap := s.snapshot.Load()
	if snap == nil {
		RequestsTotal.WithLabelValues(OutcomeError).Inc()
		return nil, ErrNotReady
	}

	start := time.Now()
	n := snap.Engine.ResultCount(req.N)
	key := cacheKey(snap.Version, req.Title, req.Weights, n)

	if recs, ok := s.cacheGet(ctx, key); ok {
		RequestsTotal.WithLabelValues(OutcomeOK).Inc()
		return recs, nil
	}

	recs, err := snap.Engine.Recommend(req.Title, req.Weights, n)
	RecommendLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		var nf *NotFoundError
		switch {
		case errors.As(err, &nf):
			RequestsTotal.WithLabelValues(OutcomeNotFound).Inc()
		case errors.Is(err, ErrInvalidWeights):
			RequestsTotal.WithLabelValues(OutcomeInvalid).Inc()
		default:
			RequestsTotal.WithLabelValues(OutcomeError).Inc()
		}
		logger.Debug("recommendation rejected",
			"trace_id", TraceIDFromContext(ctx),
			"title", req.Title,
			"error", err,
		)
		return recs, err
	}

	RequestsTotal.WithLabelValues(OutcomeOK).Inc()
	s.cacheSet(ctx, key, recs)

	return recs, nil
}

// Info describes the live snapshot.
func (s *Service) Info() (domain.CatalogInfo, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return domain.CatalogInfo{}, ErrNotReady
	}

	return domain.CatalogInfo{
		Version:         snap.Version,
		Movies:          snap.Catalog.Len(),
		People:          snap.Catalog.PeopleCount(),
		Credits:         snap.Catalog.CreditsCount(),
		VocabularyTerms: snap.Index.VocabularyTerms(),
		BuiltAt:         snap.BuiltAt.Format(time.RFC3339),
	}, nil
}

func (s *Service) cacheGet(ctx context.Context, key string) ([]domain.Recommendation, bool) {
	if s.cache == nil {
		return nil, false
	}

	recs, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		CacheEventsTotal.WithLabelValues(CacheError).Inc()
		logger.Warn("recommendation cache read failed", "key", key, "error", err)
		return nil, false
	case !ok:
		CacheEventsTotal.WithLabelValues(CacheMiss).Inc()
		return nil, false
	default:
		CacheEventsTotal.WithLabelValues(CacheHit).Inc()
		return recs, true
	}
}

func (s *Service) cacheSet(ctx context.Context, key string, recs []domain.Recommendation) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, recs); err != nil {
		CacheEventsTotal.WithLabelValues(CacheError).Inc()
		logger.Warn("recommendation cache write failed", "key", key, "error", err)
	}
}

func cacheKey(version, title string, w domain.Weights, n int) string {
	return fmt.Sprintf("reco:%s:%s:%d:%g:%g:%g:%g",
		version,
		strings.ToLower(title),
		n, w.Keywords, w.Genres, w.Overview, w.Numeric,
	)
}
