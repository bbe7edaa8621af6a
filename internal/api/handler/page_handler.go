package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/middleware"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/views"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

// PageHandler serves the public pages.
type PageHandler struct {
	googleEnabled bool
}

func NewPageHandler(googleEnabled bool) *PageHandler {
	return &PageHandler{googleEnabled: googleEnabled}
}

// Index renders the landing page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, views.PageIndex, nil)
}

// Login returns the login/signup page for one role. A visitor already
// signed in with that role goes straight home.
func (h *PageHandler) Login(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if who, ok := middleware.IdentityFrom(c); ok && who.Role == role {
			return c.Redirect(http.StatusSeeOther, role.HomePath())
		}
		return c.Render(http.StatusOK, views.PageLogin, views.LoginPage{
			Role:          role,
			GoogleEnabled: h.googleEnabled,
			Failed:        c.QueryParam("failed") != "",
		})
	}
}
