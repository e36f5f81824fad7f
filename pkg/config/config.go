package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Reco     RecoConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// CatalogConfig points at the movie, people and credit sources.
type CatalogConfig struct {
	Source      string
	MoviesPath  string
	PeoplePath  string
	CreditsPath string
}

type RecoConfig struct {
	WeightKeywords float64
	WeightGenres   float64
	DefaultResults int
	MaxResults     int
	PosterHost     string
	SnippetLength  int
	CacheTTL       time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.RedisHost != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	weightKeywords, err := getEnvFloat("RECO_WEIGHT_KEYWORDS", 0.35)
	if err != nil {
		return nil, err
	}
	weightGenres, err := getEnvFloat("RECO_WEIGHT_GENRES", 1.0)
	if err != nil {
		return nil, err
	}
	defaultResults, err := getEnvInt("RECO_DEFAULT_RESULTS", 5)
	if err != nil {
		return nil, err
	}
	maxResults, err := getEnvInt("RECO_MAX_RESULTS", 100)
	if err != nil {
		return nil, err
	}
	snippetLength, err := getEnvInt("RECO_SNIPPET_LENGTH", 300)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := time.ParseDuration(getEnv("RECO_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECO_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "cineMatch"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")),
		},
		Catalog: CatalogConfig{
			Source:      strings.ToLower(getEnv("CATALOG_SOURCE", SourceCSV)),
			MoviesPath:  getEnv("CATALOG_MOVIES_PATH", "data/movie.csv"),
			PeoplePath:  getEnv("CATALOG_PEOPLE_PATH", "data/intervenants.csv"),
			CreditsPath: getEnv("CATALOG_CREDITS_PATH", "data/intermediaire.csv"),
		},
		Reco: RecoConfig{
			WeightKeywords: weightKeywords,
			WeightGenres:   weightGenres,
			DefaultResults: defaultResults,
			MaxResults:     maxResults,
			PosterHost:     getEnv("RECO_POSTER_HOST", "https://image.tmdb.org/t/p/w500"),
			SnippetLength:  snippetLength,
			CacheTTL:       cacheTTL,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "cinematch"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", ""),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case SourceCSV:
		if c.Catalog.MoviesPath == "" || c.Catalog.PeoplePath == "" || c.Catalog.CreditsPath == "" {
			return errors.New("missing catalog file path")
		}
	case SourcePostgres:
		if c.Database.Password == "" {
			return errors.New("missing database password")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	for _, w := range []float64{c.Reco.WeightKeywords, c.Reco.WeightGenres} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.New("recommendation weights must be finite numbers")
		}
		if w < 0 {
			return errors.New("recommendation weights must not be negative")
		}
	}

	if c.Reco.MaxResults < 1 {
		return errors.New("RECO_MAX_RESULTS must be at least 1")
	}

	if c.Reco.DefaultResults < 1 || c.Reco.DefaultResults > c.Reco.MaxResults {
		return errors.New("RECO_DEFAULT_RESULTS must be between 1 and RECO_MAX_RESULTS")
	}

	if c.Reco.SnippetLength < 0 {
		return errors.New("RECO_SNIPPET_LENGTH must not be negative")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
