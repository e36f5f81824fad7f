package rest

import (
	"context"
	"net/http"
	"time"

	"cineMatch/business/recommend"
	"cineMatch/domain"
	"cineMatch/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	Info() (domain.CatalogInfo, error)
	Reload(ctx context.Context) (*recommend.Snapshot, error)
}

type CatalogHandler struct {
	catalogService CatalogService
	reloadTimeout  time.Duration
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: svc,
		reloadTimeout:  5 * time.Minute,
	}
}

func (h *CatalogHandler) GetInfo(c echo.Context) error {
	info, err := h.catalogService.Info()
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(info))
}

// Reload rebuilds the snapshot. A failure leaves the live snapshot in place.
func (h *CatalogHandler) Reload(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.reloadTimeout)
	defer cancel()

	if _, err := h.catalogService.Reload(ctx); err != nil {
		logger.Error("Catalog reload failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	info, err := h.catalogService.Info()
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	logger.Info("Catalog reloaded", "version", info.Version, "user_id", c.Get("user_id"))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(info))
}
