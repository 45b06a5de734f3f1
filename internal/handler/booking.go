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

// BookingHandler serves the authenticated booking endpoints.
type BookingHandler struct {
	Store *store.Store
}

func NewBookingHandler(s *store.Store) *BookingHandler {
	return &BookingHandler{Store: s}
}

type createBookingReq struct {
	PropertyID      string `json:"propertyId"`
	PropertyName    string `json:"propertyName"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	TotalPriceCents int64  `json:"totalPriceCents"`
}

// List handles GET /v1/bookings. The caller's id and role are passed
// through to the store, which currently returns the full collection for
// everyone (see Store.BookingsByUser).
func (h *BookingHandler) List(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.Store.BookingsByUser(c.Request().Context(), uid, model.Role(currentRole(c)))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /v1/bookings. The store assigns the id and fixes
// the status to PENDING. The quoted total is stored as-is; dates are
// validated for shape only since no arithmetic is done on them. A
// booking.created event is published best-effort afterwards.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.PropertyID = strings.TrimSpace(req.PropertyID)
	if req.PropertyID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "propertyId is required"})
	}
	for _, d := range []string{req.StartDate, req.EndDate} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "dates must be YYYY-MM-DD"})
		}
	}

	b, err := h.Store.CreateBooking(c.Request().Context(), store.BookingInput{
		PropertyID:      req.PropertyID,
		PropertyName:    req.PropertyName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalPriceCents: req.TotalPriceCents,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingID:       b.ID,
			PropertyID:      b.PropertyID,
			PropertyName:    b.PropertyName,
			UserID:          uid,
			StartDate:       b.StartDate,
			EndDate:         b.EndDate,
			TotalPriceCents: b.TotalPriceCents,
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, b)
}
