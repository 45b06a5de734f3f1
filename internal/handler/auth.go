package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/achrafgam07/realnest/internal/config"
	"github.com/achrafgam07/realnest/internal/model"
	"github.com/achrafgam07/realnest/internal/store"
	"github.com/achrafgam07/realnest/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints. Authentication
// is deliberately credential-free: presenting a seeded email is the
// whole login, which is all the demo dataset supports.
type AuthHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewAuthHandler(cfg config.Config, s *store.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: s}
}

// ----- DTOs -----

type loginReq struct {
	Email string `json:"email"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type loginResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Login matches the email against the seeded users, persists the
// session and returns the user together with a signed access token for
// the protected dashboard routes.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	u, err := h.Store.Login(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, string(u.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout clears the session record. Calling it without an active
// session succeeds all the same.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.Store.Logout(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the session user, 404 when no session exists. The session
// record is returned as stored; it is not re-checked against the user
// collection.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok, err := h.Store.CurrentUser(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load session failed"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no active session"})
	}
	return c.JSON(http.StatusOK, u)
}
