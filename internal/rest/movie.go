package rest

import (
	"context"
	"net/http"
	"time"

	"cineMatch/domain"
	"cineMatch/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type MovieService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Movie, error)
	Browse(ctx context.Context, genre string, page int) (domain.MoviePage, error)
	Genres(ctx context.Context) ([]string, error)
	GetMovie(ctx context.Context, id string) (*domain.MovieDetail, error)
	GetCast(ctx context.Context, id string, limit int) (domain.Cast, error)
	GetPerson(ctx context.Context, id string) (*domain.PersonDetail, error)
}

type MovieHandler struct {
	movieService MovieService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewMovieHandler(movieService MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

type SearchMoviesQuery struct {
	Query string `query:"q" validate:"required,min=2,max=200"`
	Limit int    `query:"limit" validate:"gte=0,lte=100"`
}

type BrowseMoviesQuery struct {
	Genre string `query:"genre" validate:"max=100"`
	Page  int    `query:"page" validate:"gte=0"`
}

type CastQuery struct {
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

func (h *MovieHandler) fail(c echo.Context, msg string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, err)
	}
	return c.JSON(status, ResponseError{Message: err.Error()})
}

func (h *MovieHandler) SearchMovies(c echo.Context) error {
	var q SearchMoviesQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movies, err := h.movieService.Search(ctx, q.Query, q.Limit)
	if err != nil {
		return h.fail(c, "Failed to search movies", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movies))
}

func (h *MovieHandler) BrowseMovies(c echo.Context) error {
	var q BrowseMoviesQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, err := h.movieService.Browse(ctx, q.Genre, q.Page)
	if err != nil {
		return h.fail(c, "Failed to browse movies", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

func (h *MovieHandler) GetGenres(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	genres, err := h.movieService.Genres(ctx)
	if err != nil {
		return h.fail(c, "Failed to list genres", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(genres))
}

func (h *MovieHandler) GetMovieByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	movie, err := h.movieService.GetMovie(ctx, c.Param("id"))
	if err != nil {
		return h.fail(c, "Failed to get movie", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(movie))
}

func (h *MovieHandler) GetCast(c echo.Context) error {
	var q CastQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	cast, err := h.movieService.GetCast(ctx, c.Param("id"), q.Limit)
	if err != nil {
		return h.fail(c, "Failed to get cast", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cast))
}

func (h *MovieHandler) GetPersonByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	person, err := h.movieService.GetPerson(ctx, c.Param("id"))
	if err != nil {
		return h.fail(c, "Failed to get person", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(person))
}
