package router

import (
	"net/http"

	"cineMatch/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	api.GET("/recommendations", handler.Recommend)
}

func SetupMovieRoutes(api *echo.Group, handler *rest.MovieHandler) {
	movies := api.Group("/movies")

	movies.GET("", handler.BrowseMovies)
	movies.GET("/search", handler.SearchMovies)
	movies.GET("/genres", handler.GetGenres)
	movies.GET("/:id", handler.GetMovieByID)
	movies.GET("/:id/cast", handler.GetCast)

	api.GET("/people/:id", handler.GetPersonByID)
}

// SetupCatalogRoutes registers catalog info and, when auth middleware is
// given, the admin reload endpoint.
func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler, adminMiddleware ...echo.MiddlewareFunc) {
	api.GET("/catalog", handler.GetInfo)

	if len(adminMiddleware) == 0 {
		return
	}
	admin := api.Group("/admin/catalog", adminMiddleware...)
	admin.POST("/reload", handler.Reload)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
