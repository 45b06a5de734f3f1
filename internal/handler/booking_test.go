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

// asUser stamps the context the way JWTAuth would after validating a
// token.
func asUser(c echo.Context, id string, role model.Role) {
	c.Set("user_id", id)
	c.Set("role", string(role))
}

func TestBookingList(t *testing.T) {
	e := echo.New()
	h := NewBookingHandler(newTestStore(t))

	t.Run("authenticated tenant sees the full set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		asUser(c, "u_tenant", model.RoleTenant)
		require.NoError(t, h.List(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var bookings []model.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
		assert.Len(t, bookings, 3)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.List(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBookingCreate(t *testing.T) {
	e := echo.New()
	h := NewBookingHandler(newTestStore(t))

	t.Run("creates a pending booking", func(t *testing.T) {
		body := `{"propertyId":"p1","propertyName":"Modern Waterfront Apartment",
			"startDate":"2026-09-01","endDate":"2026-09-08","totalPriceCents":45000000}`
		c, rec := postJSON(e, "/v1/bookings", body)
		asUser(c, "u_tenant", model.RoleTenant)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var b model.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		assert.Contains(t, b.ID, "b_")
		assert.Equal(t, model.BookingPending, b.Status)
		assert.Equal(t, int64(45000000), b.TotalPriceCents)

		// The new booking leads the listing.
		listReq := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		listRec := httptest.NewRecorder()
		lc := e.NewContext(listReq, listRec)
		asUser(lc, "u_tenant", model.RoleTenant)
		require.NoError(t, h.List(lc))
		var bookings []model.Booking
		require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &bookings))
		require.Len(t, bookings, 4)
		assert.Equal(t, b.ID, bookings[0].ID)
	})

	t.Run("missing propertyId is rejected", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/bookings", `{"startDate":"2026-09-01","endDate":"2026-09-08"}`)
		asUser(c, "u_tenant", model.RoleTenant)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/bookings", `{"propertyId":"p1","startDate":"next week","endDate":"2026-09-08"}`)
		asUser(c, "u_tenant", model.RoleTenant)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRevenueGet(t *testing.T) {
	e := echo.New()
	h := NewRevenueHandler(newTestStore(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/revenue", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Get(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []model.RevenueData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 9)
	assert.Equal(t, "Sep", rows[8].Name)
}
