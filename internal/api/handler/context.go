package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/metrics"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/middleware"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

// SessionCookie describes the browser cookie that carries the session id.
type SessionCookie struct {
	Name   string
	Secure bool
}

// startSession opens a server-side session for the account and writes the
// cookie. Only the opaque id leaves the server.
func startSession(c echo.Context, sessions ports.SessionManager, cookie SessionCookie, account *domain.Account) error {
	sess, err := sessions.Create(c.Request().Context(), account)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     cookie.Name,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	metrics.SessionsCreatedTotal.WithLabelValues(account.Role.String()).Inc()
	return nil
}

// ctxIdentity returns the identity injected by the session middleware. The
// role guard runs first on protected routes, so a miss means a wiring bug.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	who, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return who, nil
}

// loginPathFor picks the login page for a raw role, falling back to the
// landing page when the role is not recognized.
func loginPathFor(role string) string {
	r, err := domain.ParseRole(role)
	if err != nil {
		return "/"
	}
	return r.LoginPath()
}
