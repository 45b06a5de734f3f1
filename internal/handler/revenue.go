package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/achrafgam07/realnest/internal/store"
)

// RevenueHandler serves the dashboard revenue series.
type RevenueHandler struct {
	Store *store.Store
}

func NewRevenueHandler(s *store.Store) *RevenueHandler {
	return &RevenueHandler{Store: s}
}

// Get handles GET /v1/revenue and returns the static reference series.
func (h *RevenueHandler) Get(c echo.Context) error {
	rows, err := h.Store.RevenueData(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load revenue failed"})
	}
	return c.JSON(http.StatusOK, rows)
}
