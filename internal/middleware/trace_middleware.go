package middleware

import (
	"cineMatch/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = "X-Request-ID"

// TraceID tags each request with an id, reusing the caller's X-Request-ID
// when present, and exposes it through the request context.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(recommend.WithTraceID(req.Context(), id)))
			c.Response().Header().Set(HeaderRequestID, id)

			return next(c)
		}
	}
}
