package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

// RequireRole guards the /:role/... routes. Unauthenticated requests are sent
// to the role's login page; a session for the other role is forbidden.
func RequireRole(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := domain.ParseRole(c.Param(param))
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "unknown role")
			}

			who, ok := IdentityFrom(c)
			if !ok {
				return c.Redirect(http.StatusSeeOther, role.LoginPath())
			}
			if who.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
