package handler // handler defines the HTTP handlers of the API

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// currentUserID extracts the user_id that JWTAuth stored in the context.
// JWT claim values arrive as interface{}, so the helper normalizes to a
// string and rejects anything else.
func currentUserID(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("invalid user_id in context")
}

// currentRole extracts the role claim, empty when absent.
func currentRole(c echo.Context) string {
	if v, ok := c.Get("role").(string); ok {
		return v
	}
	return ""
}
