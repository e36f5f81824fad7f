package recommend

import "cineMatch/domain"

const (
	DimensionKeywords = "keywords"
	DimensionGenres   = "genres"
)

// Config holds the engine and service tunables.
type Config struct {
	WeightKeywords float64
	WeightGenres   float64
	DefaultResults int
	MaxResults     int
	PosterHost     string
	SnippetLength  int

	Index IndexConfig
}

// IndexConfig sizes the per-dimension vocabularies.
type IndexConfig struct {
	Keywords VectorizerConfig
	Genres   VectorizerConfig
}

const (
	defaultWeightKeywords = 0.35
	defaultWeightGenres   = 1.0
	defaultResults        = 5
	defaultMaxResults     = 100
	defaultPosterHost     = "https://image.tmdb.org/t/p/w500"
	defaultSnippetLength  = 300

	defaultKeywordFeatures = 500
	defaultGenreFeatures   = 50
)

func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		Keywords: VectorizerConfig{MaxFeatures: defaultKeywordFeatures, NGramMin: 1, NGramMax: 2, StopWords: true},
		Genres:   VectorizerConfig{MaxFeatures: defaultGenreFeatures, NGramMin: 1, NGramMax: 1},
	}
}

func DefaultConfig() Config {
	return Config{
		WeightKeywords: defaultWeightKeywords,
		WeightGenres:   defaultWeightGenres,
		DefaultResults: defaultResults,
		MaxResults:     defaultMaxResults,
		PosterHost:     defaultPosterHost,
		SnippetLength:  defaultSnippetLength,
		Index:          DefaultIndexConfig(),
	}
}

// DefaultWeights are used when a request carries no weights at all.
func (c Config) DefaultWeights() domain.Weights {
	return domain.Weights{Keywords: c.WeightKeywords, Genres: c.WeightGenres}
}
