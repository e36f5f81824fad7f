package movie

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cineMatch/business/catalog"
	"cineMatch/business/recommend"
	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

// SnapshotProvider hands out the catalog snapshot that is currently live.
type SnapshotProvider interface {
	Snapshot() *recommend.Snapshot
}

type movieService struct {
	snapshots  SnapshotProvider
	posterHost string
}

func NewMovieService(snapshots SnapshotProvider, posterHost string) *movieService {
	return &movieService{
		snapshots:  snapshots,
		posterHost: posterHost,
	}
}

func (s *movieService) current(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snap := s.snapshots.Snapshot()
	if snap == nil {
		return nil, recommend.ErrNotReady
	}

	return snap.Catalog, nil
}

func (s *movieService) Search(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	cat, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return cat.Search(query, limit), nil
}

func (s *movieService) Browse(ctx context.Context, genre string, page int) (domain.MoviePage, error) {
	cat, err := s.current(ctx)
	if err != nil {
		return domain.MoviePage{}, err
	}

	return cat.Browse(genre, page, catalog.DefaultPageSize), nil
}

func (s *movieService) Genres(ctx context.Context) ([]string, error) {
	cat, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return cat.Genres(), nil
}

func (s *movieService) GetMovie(ctx context.Context, id string) (*domain.MovieDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("movie id is required")
	}

	cat, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	m, ok := cat.MovieByID(id)
	if !ok {
		logger.Debug("movie not found", "id", id)
		return nil, catalog.ErrMovieNotFound
	}

	return &domain.MovieDetail{
		Movie:     m,
		PosterURL: recommend.PosterURL(m, s.posterHost),
		Cast:      cat.Cast(id, catalog.DefaultCastLimit),
	}, nil
}

func (s *movieService) GetCast(ctx context.Context, id string, limit int) (domain.Cast, error) {
	cat, err := s.current(ctx)
	if err != nil {
		return domain.Cast{}, err
	}

	if _, ok := cat.MovieByID(id); !ok {
		return domain.Cast{}, catalog.ErrMovieNotFound
	}

	return cat.Cast(id, limit), nil
}

func (s *movieService) GetPerson(ctx context.Context, id string) (*domain.PersonDetail, error) {
	cat, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	p, err := cat.Person(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	p.ProfileURL = catalog.CleanPhotoURL(p.ProfileURL)

	return &p, nil
}
