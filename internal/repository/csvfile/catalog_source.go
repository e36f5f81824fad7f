package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"cineMatch/business/catalog"
	"cineMatch/domain"
	"cineMatch/pkg/config"
)

const ctxCheckEvery = 1000

// CatalogSource reads the catalog from the three exported CSV files. Columns
// are matched by header name, so column order and extra columns do not matter.
type CatalogSource struct {
	moviesPath  string
	peoplePath  string
	creditsPath string
}

func NewCatalogSource(cfg config.CatalogConfig) *CatalogSource {
	return &CatalogSource{
		moviesPath:  cfg.MoviesPath,
		peoplePath:  cfg.PeoplePath,
		creditsPath: cfg.CreditsPath,
	}
}

func (s *CatalogSource) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	err := readTable(ctx, "movies", s.moviesPath, func(r row) {
		movies = append(movies, domain.Movie{
			ID:                r.text("tconst"),
			Title:             r.text("title"),
			OriginalTitle:     r.text("movie_original_title"),
			KeywordsRaw:       r.text("keywords"),
			OverviewLocalized: r.text("movie_overview_fr"),
			Overview:          r.text("movie_overview"),
			TaglineLocalized:  r.text("movie_tagline_fr"),
			Genres:            r.text("movie_genres_y"),
			ReleaseYear:       r.integer("movie_startYear"),
			RuntimeMinutes:    r.integer("movie_runtimeMinutes"),
			Popularity:        r.float("movie_popularity"),
			VoteAverage:       r.float("movie_vote_average_tmdb"),
			PosterURL:         r.text("movie_poster_url_fr"),
			PosterPath:        r.text("movie_poster_path_fr"),
			PosterPathAlt:     r.text("movie_poster_path_1"),
		})
	})
	return movies, err
}

func (s *CatalogSource) LoadPeople(ctx context.Context) ([]domain.Person, error) {
	var people []domain.Person
	err := readTable(ctx, "people", s.peoplePath, func(r row) {
		people = append(people, domain.Person{
			ID:          r.text("nconst"),
			Name:        r.text("intervenant_primaryName"),
			Professions: r.text("intervenant_primaryProfession"),
			BirthYear:   r.integer("intervenant_birthYear"),
			DeathYear:   r.integer("intervenant_deathYear"),
			ProfileURL:  r.text("tmdb_profile_url"),
			Popularity:  r.float("tmdb_popularity"),
			Biography:   r.text("tmdb_biography_fr"),
		})
	})
	return people, err
}

func (s *CatalogSource) LoadCredits(ctx context.Context) ([]domain.Credit, error) {
	var credits []domain.Credit
	err := readTable(ctx, "credits", s.creditsPath, func(r row) {
		credits = append(credits, domain.Credit{
			MovieID:  r.text("tconst"),
			PersonID: r.text("nconst"),
			Ordering: r.integer("ordering"),
		})
	})
	return credits, err
}

type row struct {
	columns map[string]int
	fields  []string
}

// text returns the trimmed cell, or "" when the column or cell is missing.
func (r row) text(name string) string {
	i, ok := r.columns[strings.ToLower(name)]
	if !ok || i >= len(r.fields) {
		return ""
	}
	v := strings.TrimSpace(r.fields[i])
	if strings.EqualFold(v, "nan") || v == `\N` {
		return ""
	}
	return v
}

func (r row) float(name string) float64 {
	f, err := strconv.ParseFloat(r.text(name), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// integer accepts "1994" as well as "1994.0".
func (r row) integer(name string) int {
	return int(r.float(name))
}

func readTable(ctx context.Context, source, path string, emit func(row)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &catalog.SourceMissingError{Source: source, Path: path}
		}
		return fmt.Errorf("failed to open %s file: %w", source, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to read %s header: %w", source, err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := columns[h]; !dup {
			columns[h] = i
		}
	}

	for n := 1; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("context error: %w", err)
			}
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s line %d: %w", source, n+1, err)
		}

		emit(row{columns: columns, fields: fields})
	}
}
