//go:build !integration

package movie

import (
	"context"
	"errors"
	"testing"

	"cineMatch/business/catalog"
	"cineMatch/business/recommend"
	"cineMatch/domain"
)

type staticSnapshot struct {
	snap *recommend.Snapshot
}

func (s staticSnapshot) Snapshot() *recommend.Snapshot {
	return s.snap
}

func newTestService() *movieService {
	cat := catalog.New(
		catalog.PrepareMovies([]domain.Movie{
			{ID: "tt1", Title: "Heat", Genres: "Crime", PosterPath: "/heat.jpg"},
			{ID: "tt2", Title: "Alien", Genres: "Horror"},
		}),
		[]domain.Person{
			{ID: "nm1", Name: "Michael Mann", Professions: "director", ProfileURL: "http://img/mann.jpg"},
			{ID: "nm2", Name: "Al Pacino", Professions: "actor"},
		},
		[]domain.Credit{{MovieID: "tt1", PersonID: "nm1"}, {MovieID: "tt1", PersonID: "nm2", Ordering: 1}},
	)
	return NewMovieService(staticSnapshot{snap: &recommend.Snapshot{Catalog: cat}}, "https://posters")
}

func TestMovieService_GetMovie(t *testing.T) {
	svc := newTestService()

	detail, err := svc.GetMovie(context.Background(), "tt1")
	if err != nil {
		t.Fatalf("GetMovie() error: %v", err)
	}
	if detail.PosterURL != "https://posters/heat.jpg" {
		t.Errorf("poster = %q", detail.PosterURL)
	}
	if len(detail.Cast.Directors) != 1 || len(detail.Cast.Actors) != 1 {
		t.Errorf("cast = %+v", detail.Cast)
	}

	if _, err := svc.GetMovie(context.Background(), "tt9"); !errors.Is(err, catalog.ErrMovieNotFound) {
		t.Errorf("GetMovie(tt9) error = %v, want ErrMovieNotFound", err)
	}
	if _, err := svc.GetCast(context.Background(), "tt9", 5); !errors.Is(err, catalog.ErrMovieNotFound) {
		t.Errorf("GetCast(tt9) error = %v, want ErrMovieNotFound", err)
	}
}

func TestMovieService_GetPerson(t *testing.T) {
	p, err := newTestService().GetPerson(context.Background(), "nm1")
	if err != nil {
		t.Fatalf("GetPerson() error: %v", err)
	}
	if p.ProfileURL != "https://img/mann.jpg" || len(p.Filmography) != 1 {
		t.Errorf("person = %+v", p)
	}
}

func TestMovieService_NotReady(t *testing.T) {
	svc := NewMovieService(staticSnapshot{}, "")

	if _, err := svc.Search(context.Background(), "heat", 5); !errors.Is(err, recommend.ErrNotReady) {
		t.Errorf("Search() error = %v, want ErrNotReady", err)
	}
	if _, err := svc.Genres(context.Background()); !errors.Is(err, recommend.ErrNotReady) {
		t.Errorf("Genres() error = %v, want ErrNotReady", err)
	}
}
