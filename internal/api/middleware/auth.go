package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/core/token"
)

// Context keys under which Auth stores the verified identity.
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxFullName = "full_name"
)

// Auth validates the bearer token and injects the identity claims into the
// echo context. An expired token gets a distinct message so clients can
// re-authenticate instead of treating it as a hard failure.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			res := tokens.Verify(parts[1])
			if !res.Valid {
				if res.Expired {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, res.Claims.UserID)
			c.Set(CtxRole, res.Claims.Role)
			c.Set(CtxFullName, res.Claims.FullName)

			return next(c)
		}
	}
}
