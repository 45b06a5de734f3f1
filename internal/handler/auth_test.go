package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achrafgam07/realnest/internal/config"
	"github.com/achrafgam07/realnest/internal/model"
	"github.com/achrafgam07/realnest/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	s, err := store.Open(context.Background(), fs)
	require.NoError(t, err)
	return s
}

func testConfig() config.Config {
	return config.Config{Env: "test", JWTSecret: "test-secret", AccessTTLMin: 60}
}

// postJSON builds an echo context for a JSON POST and a recorder to
// inspect the response.
func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthLogin(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testConfig(), newTestStore(t))

	t.Run("known email returns user and token", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/auth/login", `{"email":"Agent@RealNest.com"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			User   model.User `json:"user"`
			Access struct {
				Token string `json:"token"`
			} `json:"access"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "u_agent", resp.User.ID)
		assert.Equal(t, model.RoleAgent, resp.User.Role)
		assert.NotEmpty(t, resp.Access.Token)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/auth/login", `{"email":"nonexistent@x.com"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing email is a bad request", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/auth/login", `{}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthSessionFlow(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(testConfig(), newTestStore(t))

	t.Run("me without session is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Me(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("login then me then logout", func(t *testing.T) {
		c, rec := postJSON(e, "/v1/auth/login", `{"email":"tenant@realnest.com"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		meRec := httptest.NewRecorder()
		require.NoError(t, h.Me(e.NewContext(req, meRec)))
		assert.Equal(t, http.StatusOK, meRec.Code)
		var u model.User
		require.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &u))
		assert.Equal(t, "u_tenant", u.ID)

		outReq := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		outRec := httptest.NewRecorder()
		require.NoError(t, h.Logout(e.NewContext(outReq, outRec)))
		assert.Equal(t, http.StatusNoContent, outRec.Code)

		againReq := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		againRec := httptest.NewRecorder()
		require.NoError(t, h.Me(e.NewContext(againReq, againRec)))
		assert.Equal(t, http.StatusNotFound, againRec.Code)
	})
}
