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

type (
	RecommendHandler struct {
		validate       *validator.Validate
		recoService    RecommendService
		defaultWeights domain.Weights
		timeout        time.Duration
	}

	RecommendService interface {
		Recommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.Recommendation, error)
	}

	// RecommendQuery carries the query string of GET /recommendations.
	// Omitted weights take the configured defaults.
	RecommendQuery struct {
		Title    string  `validate:"required,max=500"`
		N        int     `validate:"gte=0"`
		Keywords float64 `validate:"gte=0"`
		Genres   float64 `validate:"gte=0"`
		Overview float64 `validate:"gte=0"`
		Numeric  float64 `validate:"gte=0"`
	}
)

func NewRecommendHandler(svc RecommendService, defaultWeights domain.Weights) *RecommendHandler {
	return &RecommendHandler{
		validate:       validator.New(),
		recoService:    svc,
		defaultWeights: defaultWeights,
		timeout:        10 * time.Second,
	}
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	q := RecommendQuery{
		Keywords: h.defaultWeights.Keywords,
		Genres:   h.defaultWeights.Genres,
		Overview: h.defaultWeights.Overview,
		Numeric:  h.defaultWeights.Numeric,
	}

	err := echo.QueryParamsBinder(c).
		String("title", &q.Title).
		Int("n", &q.N).
		Float64("w_keywords", &q.Keywords).
		Float64("w_genres", &q.Genres).
		Float64("w_overview", &q.Overview).
		Float64("w_numeric", &q.Numeric).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recoService.Recommend(ctx, domain.RecommendationRequest{
		Title: q.Title,
		Weights: domain.Weights{
			Keywords: q.Keywords,
			Genres:   q.Genres,
			Overview: q.Overview,
			Numeric:  q.Numeric,
		},
		N: q.N,
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to recommend", err)
		}
		return c.JSON(status, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
