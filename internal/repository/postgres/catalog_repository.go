package postgres

import (
	"context"
	"fmt"

	"cineMatch/domain"

	"gorm.io/gorm"
)

// NULL text becomes "" and NULL or fractional numerics become 0, so rows scan
// straight into the domain structs.
const (
	movieColumns = `tconst,
		COALESCE(title, '') AS title,
		COALESCE(movie_original_title, '') AS movie_original_title,
		COALESCE(keywords, '') AS keywords,
		COALESCE(movie_overview_fr, '') AS movie_overview_fr,
		COALESCE(movie_overview, '') AS movie_overview,
		COALESCE(movie_tagline_fr, '') AS movie_tagline_fr,
		COALESCE(movie_genres_y, '') AS movie_genres_y,
		COALESCE(movie_startyear, 0)::int AS movie_startyear,
		COALESCE(movie_runtimeminutes, 0)::int AS movie_runtimeminutes,
		COALESCE(movie_popularity, 0)::float8 AS movie_popularity,
		COALESCE(movie_vote_average_tmdb, 0)::float8 AS movie_vote_average_tmdb,
		COALESCE(movie_poster_url_fr, '') AS movie_poster_url_fr,
		COALESCE(movie_poster_path_fr, '') AS movie_poster_path_fr,
		COALESCE(movie_poster_path_1, '') AS movie_poster_path_1`

	personColumns = `nconst,
		COALESCE(intervenant_primaryname, '') AS intervenant_primaryname,
		COALESCE(intervenant_primaryprofession, '') AS intervenant_primaryprofession,
		COALESCE(intervenant_birthyear, 0)::int AS intervenant_birthyear,
		COALESCE(intervenant_deathyear, 0)::int AS intervenant_deathyear,
		COALESCE(tmdb_profile_url, '') AS tmdb_profile_url,
		COALESCE(tmdb_popularity, 0)::float8 AS tmdb_popularity,
		COALESCE(tmdb_biography_fr, '') AS tmdb_biography_fr`

	creditColumns = `tconst, nconst, COALESCE(ordering, 0)::int AS ordering`
)

// CatalogRepository reads the catalog tables from Postgres in physical row
// order, which keeps the first-occurrence rule of the loader stable. It
// satisfies catalog.Source.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

func (r *CatalogRepository) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var movies []domain.Movie
	if err := r.DB.WithContext(ctx).Select(movieColumns).Order("ctid").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	return movies, nil
}

func (r *CatalogRepository) LoadPeople(ctx context.Context) ([]domain.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var people []domain.Person
	if err := r.DB.WithContext(ctx).Select(personColumns).Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find people: %w", err)
	}

	return people, nil
}

func (r *CatalogRepository) LoadCredits(ctx context.Context) ([]domain.Credit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var credits []domain.Credit
	if err := r.DB.WithContext(ctx).Select(creditColumns).Order("ctid").Find(&credits).Error; err != nil {
		return nil, fmt.Errorf("failed to find credits: %w", err)
	}

	return credits, nil
}
