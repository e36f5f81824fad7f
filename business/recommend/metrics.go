package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_requests_total",
			Help: "Recommendation requests by outcome.",
		},
		[]string{"outcome"},
	)

	RecommendLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reco_recommend_latency_seconds",
			Help:    "Time spent scoring one recommendation request.",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogMovies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reco_catalog_movies",
			Help: "Movies in the snapshot currently serving requests.",
		},
	)

	VocabularyTerms = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reco_vocabulary_terms",
			Help: "Fitted vocabulary size per dimension.",
		},
		[]string{"dimension"},
	)

	IndexBuildSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reco_index_build_seconds",
			Help:    "Time spent fitting the feature index.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	CacheEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_cache_events_total",
			Help: "Recommendation cache lookups by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RecommendLatency,
		CatalogMovies,
		VocabularyTerms,
		IndexBuildSeconds,
		CacheEventsTotal,
	)
}
