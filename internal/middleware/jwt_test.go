package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achrafgam07/realnest/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	const secret = "test-secret"

	do := func(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, JWTAuth(secret)(okHandler)(c))
		return rec, c
	}

	t.Run("valid token passes and fills context", func(t *testing.T) {
		tok, err := utils.NewAccessToken(secret, "u_agent", "AGENT", 5)
		require.NoError(t, err)
		rec, c := do(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u_agent", c.Get("user_id"))
		assert.Equal(t, "AGENT", c.Get("role"))
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec, _ := do(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec, _ := do(t, "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", "u_agent", "AGENT", 5)
		require.NoError(t, err)
		rec, _ := do(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tok, err := utils.NewAccessToken(secret, "u_agent", "AGENT", -1)
		require.NoError(t, err)
		rec, _ := do(t, "Bearer "+tok.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	do := func(t *testing.T, role any, allowed ...string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		require.NoError(t, RequireRole(allowed...)(okHandler)(c))
		return rec
	}

	t.Run("allowed role passes", func(t *testing.T) {
		rec := do(t, "AGENT", "ADMIN", "AGENT", "OWNER")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("tenant cannot reach manage routes", func(t *testing.T) {
		rec := do(t, "TENANT", "ADMIN", "AGENT", "OWNER")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		rec := do(t, nil, "ADMIN")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
