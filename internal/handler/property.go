package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/achrafgam07/realnest/internal/model"
	"github.com/achrafgam07/realnest/internal/queue"
	"github.com/achrafgam07/realnest/internal/store"
)

// PropertyHandler serves public listing browse/detail and the
// agent/owner create and delete endpoints.
type PropertyHandler struct {
	Store *store.Store
}

func NewPropertyHandler(s *store.Store) *PropertyHandler {
	return &PropertyHandler{Store: s}
}

type createPropertyReq struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	PriceCents   int64                 `json:"priceCents"`
	Currency     string                `json:"currency"`
	Address      string                `json:"address"`
	City         string                `json:"city"`
	Country      string                `json:"country"`
	PropertyType string                `json:"propertyType"`
	Bedrooms     int                   `json:"bedrooms"`
	Bathrooms    int                   `json:"bathrooms"`
	AreaSqm      int                   `json:"areaSqm"`
	Images       []model.PropertyImage `json:"images"`
	AgentName    string                `json:"agentName"`
}

var knownPropertyTypes = map[model.PropertyType]bool{
	model.TypeApartment:  true,
	model.TypeVilla:      true,
	model.TypeLand:       true,
	model.TypeCommercial: true,
}

// List handles GET /v1/properties. The optional ?query= narrows by
// case-insensitive substring match on title, city or address; ?type=
// filters by exact property type, with "ALL" (or absence) meaning no
// type filter. Results come back newest first.
func (h *PropertyHandler) List(c echo.Context) error {
	filter := store.PropertyFilter{
		Query: c.QueryParam("query"),
		Type:  c.QueryParam("type"),
	}
	props, err := h.Store.Properties(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load properties failed"})
	}
	return c.JSON(http.StatusOK, props)
}

// Get handles GET /v1/properties/:id and returns 404 for unknown ids.
func (h *PropertyHandler) Get(c echo.Context) error {
	p, ok, err := h.Store.PropertyByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load property failed"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /v1/properties. The store assigns the id and
// fixes the status to AVAILABLE; a property.listed event is published
// best-effort after the listing is stored.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	ptype := model.PropertyType(strings.ToUpper(strings.TrimSpace(req.PropertyType)))
	if !knownPropertyTypes[ptype] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown property type"})
	}

	p, err := h.Store.CreateProperty(c.Request().Context(), store.PropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Currency:     req.Currency,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		PropertyType: ptype,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqm:      req.AreaSqm,
		Images:       req.Images,
		AgentName:    req.AgentName,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create property failed"})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.PublishPropertyListed(ctx, queue.PropertyListedEvent{
			PropertyID:   p.ID,
			Title:        p.Title,
			City:         p.City,
			Country:      p.Country,
			PropertyType: string(p.PropertyType),
			PriceCents:   p.PriceCents,
			AgentName:    p.AgentName,
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, p)
}

// Delete handles DELETE /v1/properties/:id. Removing an unknown id is a
// no-op and still succeeds, so the endpoint is idempotent.
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.Store.DeleteProperty(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete property failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
