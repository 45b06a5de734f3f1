package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achrafgam07/realnest/internal/model"
)

func TestPropertyList(t *testing.T) {
	e := echo.New()
	h := NewPropertyHandler(newTestStore(t))

	list := func(t *testing.T, target string) []model.Property {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.List(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		var props []model.Property
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &props))
		return props
	}

	t.Run("unfiltered", func(t *testing.T) {
		assert.Len(t, list(t, "/v1/properties"), 6)
	})

	t.Run("query filter", func(t *testing.T) {
		props := list(t, "/v1/properties?query=barcelona")
		require.Len(t, props, 1)
		assert.Equal(t, "Barcelona", props[0].City)
	})

	t.Run("type filter", func(t *testing.T) {
		props := list(t, "/v1/properties?type=VILLA")
		require.Len(t, props, 2)
		for _, p := range props {
			assert.Equal(t, model.TypeVilla, p.PropertyType)
		}
	})

	t.Run("type ALL means unfiltered", func(t *testing.T) {
		assert.Len(t, list(t, "/v1/properties?type=ALL"), 6)
	})
}

func TestPropertyGet(t *testing.T) {
	e := echo.New()
	h := NewPropertyHandler(newTestStore(t))

	t.Run("known id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/properties/:id")
		c.SetParamNames("id")
		c.SetParamValues("p2")
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		var p model.Property
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, "Luxury Villa in the Hills", p.Title)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/properties/:id")
		c.SetParamNames("id")
		c.SetParamValues("missing")
		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPropertyCreate(t *testing.T) {
	e := echo.New()
	h := NewPropertyHandler(newTestStore(t))

	t.Run("creates an available listing", func(t *testing.T) {
		body := `{"title":"Seaside Loft","description":"Bright loft.","priceCents":30000000,
			"currency":"EUR","address":"3 Harbor Way","city":"Lisbon","country":"Portugal",
			"propertyType":"APARTMENT","bedrooms":2,"bathrooms":1,"areaSqm":80,"agentName":"Sarah Connor"}`
		c, rec := postJSON(e, "/v1/properties", body)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var p model.Property
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Contains(t, p.ID, "p_")
		assert.Equal(t, model.StatusAvailable, p.Status)
		assert.Equal(t, "Seaside Loft", p.Title)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/properties", `{"propertyType":"VILLA"}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/properties", `{"title":"X","propertyType":"CASTLE"}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPropertyDelete(t *testing.T) {
	e := echo.New()
	h := NewPropertyHandler(newTestStore(t))

	del := func(t *testing.T, id string) int {
		t.Helper()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/properties/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.Delete(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, del(t, "p1"))
	// Idempotent: deleting again, or deleting an id that never existed,
	// still succeeds.
	assert.Equal(t, http.StatusNoContent, del(t, "p1"))
	assert.Equal(t, http.StatusNoContent, del(t, "never-existed"))
}
