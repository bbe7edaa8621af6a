package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

const identityKey = "identity"

// Session resolves the session cookie, if any, and injects the identity into
// the context. Requests without a valid session continue unauthenticated.
func Session(sessions ports.SessionManager, cookieName string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			who, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			switch {
			case err == nil:
				c.Set(identityKey, who)
			case errors.Is(err, domain.ErrSessionNotFound):
				ClearCookie(c, cookieName, c.IsTLS())
			default:
				log.Warn().Err(err).Msg("session lookup failed")
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by Session.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	who, ok := c.Get(identityKey).(domain.Identity)
	return who, ok
}

// SetIdentity places an identity in the context; used by Session and tests.
func SetIdentity(c echo.Context, who domain.Identity) {
	c.Set(identityKey, who)
}

// ClearCookie expires the named cookie in the browser.
func ClearCookie(c echo.Context, name string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
