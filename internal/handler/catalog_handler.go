package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/service"
)

// CatalogHandler serves the treatment catalog.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListNames godoc
// @Summary List service names
// @Tags services
// @Produce json
// @Success 200 {array} model.ServiceName
// @Failure 500 {object} errors.ErrorResponse
// @Router /service [get]
func (h *CatalogHandler) ListNames(c echo.Context) error {
	names, err := h.catalog.Names(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, names)
}

// ListServices godoc
// @Summary List services with all configured slots
// @Tags services
// @Produce json
// @Success 200 {array} model.Service
// @Failure 500 {object} errors.ErrorResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, services)
}

// Available godoc
// @Summary List services with the slots still free on a date
// @Tags services
// @Produce json
// @Param date query string true "Date as sent by the client, e.g. Jan 1, 2024"
// @Success 200 {array} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /available [get]
func (h *CatalogHandler) Available(c echo.Context) error {
	services, err := h.catalog.Available(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, services)
}
