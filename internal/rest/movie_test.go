//go:build !integration

package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cineMatch/business/catalog"
	"cineMatch/domain"

	"github.com/labstack/echo/v4"
)

type fakeMovieService struct {
	query string
	limit int
	genre string
	page  int
}

func (f *fakeMovieService) Search(ctx context.Context, query string, limit int) ([]domain.Movie, error) {
	f.query, f.limit = query, limit
	return []domain.Movie{{ID: "tt1", DisplayTitle: "Heat"}}, nil
}

func (f *fakeMovieService) Browse(ctx context.Context, genre string, page int) (domain.MoviePage, error) {
	f.genre, f.page = genre, page
	return domain.MoviePage{Page: 1, TotalPages: 1}, nil
}

func (f *fakeMovieService) Genres(ctx context.Context) ([]string, error) {
	return []string{"Crime", "Drama"}, nil
}

func (f *fakeMovieService) GetMovie(ctx context.Context, id string) (*domain.MovieDetail, error) {
	if id != "tt1" {
		return nil, catalog.ErrMovieNotFound
	}
	return &domain.MovieDetail{Movie: domain.Movie{ID: "tt1", DisplayTitle: "Heat"}}, nil
}

func (f *fakeMovieService) GetCast(ctx context.Context, id string, limit int) (domain.Cast, error) {
	f.limit = limit
	return domain.Cast{Directors: []string{"Michael Mann"}}, nil
}

func (f *fakeMovieService) GetPerson(ctx context.Context, id string) (*domain.PersonDetail, error) {
	return nil, catalog.ErrPersonNotFound
}

func doGetWithParam(h echo.HandlerFunc, target, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	_ = h(c)
	return rec
}

func TestMovieHandler(t *testing.T) {
	svc := &fakeMovieService{}
	h := NewMovieHandler(svc)

	t.Run("search", func(t *testing.T) {
		rec := doGet(h.SearchMovies, "/movies/search?q=he&limit=5")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if svc.query != "he" || svc.limit != 5 {
			t.Errorf("service got q=%q limit=%d", svc.query, svc.limit)
		}
	})

	t.Run("search query too short", func(t *testing.T) {
		if rec := doGet(h.SearchMovies, "/movies/search?q=h"); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("browse", func(t *testing.T) {
		rec := doGet(h.BrowseMovies, "/movies?genre=Crime&page=2")
		if rec.Code != http.StatusOK || svc.genre != "Crime" || svc.page != 2 {
			t.Errorf("status = %d, genre=%q page=%d", rec.Code, svc.genre, svc.page)
		}
	})

	t.Run("genres", func(t *testing.T) {
		rec := doGet(h.GetGenres, "/movies/genres")
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Drama") {
			t.Errorf("status = %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("movie found", func(t *testing.T) {
		if rec := doGetWithParam(h.GetMovieByID, "/movies/tt1", "tt1"); rec.Code != http.StatusOK {
			t.Errorf("status = %d", rec.Code)
		}
	})

	t.Run("movie missing", func(t *testing.T) {
		if rec := doGetWithParam(h.GetMovieByID, "/movies/tt9", "tt9"); rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("cast", func(t *testing.T) {
		rec := doGetWithParam(h.GetCast, "/movies/tt1/cast?limit=4", "tt1")
		if rec.Code != http.StatusOK || svc.limit != 4 || !strings.Contains(rec.Body.String(), "Michael Mann") {
			t.Errorf("status = %d, limit = %d, body %s", rec.Code, svc.limit, rec.Body.String())
		}
	})

	t.Run("person missing", func(t *testing.T) {
		if rec := doGetWithParam(h.GetPersonByID, "/people/nm1", "nm1"); rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
