package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/api/middleware"
)

// identity is the authenticated caller as injected by the Auth middleware.
type identity struct {
	UserID   string
	Role     string
	FullName string
}

// ctxIdentity extracts the auth claims and fast-fails before any service
// call: a non-empty user id and role prove the middleware ran. A token that
// parses but carries no subject is structurally valid yet operationally
// unusable, so it is rejected with 401.
func ctxIdentity(c echo.Context) (identity, error) {
	id := identity{}
	id.UserID, _ = c.Get(middleware.CtxUserID).(string)
	id.Role, _ = c.Get(middleware.CtxRole).(string)
	id.FullName, _ = c.Get(middleware.CtxFullName).(string)

	if id.UserID == "" || id.Role == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
