package rest

import (
	"errors"
	"net/http"

	"cineMatch/business/catalog"
	"cineMatch/business/recommend"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var notFound *recommend.NotFoundError
	switch {
	case errors.As(err, &notFound),
		errors.Is(err, catalog.ErrMovieNotFound),
		errors.Is(err, catalog.ErrPersonNotFound):
		return http.StatusNotFound
	case errors.Is(err, recommend.ErrInvalidWeights):
		return http.StatusBadRequest
	case errors.Is(err, recommend.ErrNotReady):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
