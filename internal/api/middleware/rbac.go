package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/api/metrics"
	"github.com/freelancehub/time-tracking-api/internal/core/rbac"
)

// RequireRole admits only callers whose role is in the allowed set. It must
// run after Auth, which populates the role claim; a missing claim is an
// authentication failure, not an authorization one.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access denied: insufficient role")
			}
			return next(c)
		}
	}
}

// RequirePermission admits callers whose role carries at least one of the
// given permissions in the registry. The admin wildcard grant satisfies any
// permission check.
func RequirePermission(registry *rbac.Registry, perms ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !registry.HasPermission(role, perms...) {
				metrics.AccessDeniedTotal.WithLabelValues("permission").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access denied: missing permission")
			}
			return next(c)
		}
	}
}
