package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cineMatch/domain"
	"cineMatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Source reads the raw catalog tables.
type Source interface {
	LoadMovies(ctx context.Context) ([]domain.Movie, error)
	LoadPeople(ctx context.Context) ([]domain.Person, error)
	LoadCredits(ctx context.Context) ([]domain.Credit, error)
}

type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load reads the three tables, derives feature texts and display titles, and
// returns the deduplicated working catalog. The same source snapshot always
// yields the same catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()

	var (
		movies  []domain.Movie
		people  []domain.Person
		credits []domain.Credit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = l.source.LoadMovies(gctx)
		if err != nil {
			return fmt.Errorf("load movies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		people, err = l.source.LoadPeople(gctx)
		if err != nil {
			return fmt.Errorf("load people: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		credits, err = l.source.LoadCredits(gctx)
		if err != nil {
			return fmt.Errorf("load credits: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	working := PrepareMovies(movies)
	if len(working) == 0 {
		return nil, ErrEmptyCatalog
	}

	logger.Info("catalog loaded",
		"raw_movies", len(movies),
		"movies", len(working),
		"people", len(people),
		"credits", len(credits),
		"elapsed", time.Since(start).String(),
	)

	return New(working, people, credits), nil
}

// PrepareMovies derives display titles and feature texts, drops rows without a
// title and keeps the first row for each display title. Input order is kept.
func PrepareMovies(movies []domain.Movie) []domain.Movie {
	out := make([]domain.Movie, 0, len(movies))
	seen := make(map[string]struct{}, len(movies))

	for _, m := range movies {
		title := DisplayTitle(m)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		m.DisplayTitle = title
		f := BuildFeatures(m)
		m.KeywordsText = f.Keywords
		m.OverviewText = f.Overview
		m.GenresText = f.Genres
		m.Genres = strings.TrimSpace(m.Genres)

		out = append(out, m)
	}

	return out
}
