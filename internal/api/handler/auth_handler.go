package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/metrics"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/middleware"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

// AuthHandler serves the local-credential login, signup and logout forms.
type AuthHandler struct {
	local    ports.LocalAuthenticator
	sessions ports.SessionManager
	cookie   SessionCookie
	log      zerolog.Logger
}

func NewAuthHandler(local ports.LocalAuthenticator, sessions ports.SessionManager, cookie SessionCookie, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{local: local, sessions: sessions, cookie: cookie, log: log}
}

type credentialsForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role" validate:"required"`
}

// Login authenticates email/password against the declared role's accounts.
//
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Param        role      formData  string  true  "client or freelancer"
// @Success      303  "Redirect to /{role}/home"
// @Failure      303  "Redirect back to the role's login page"
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	account, err := h.local.Authenticate(c.Request().Context(), form.Email, form.Password, form.Role)
	metrics.AuthAttemptsTotal.WithLabelValues("local", metrics.RoleLabel(form.Role), metrics.Outcome(err)).Inc()
	if err != nil {
		// the reason stays in the log; the browser only learns that it failed
		h.log.Info().Err(err).Str("role", form.Role).Msg("local login rejected")
		return c.Redirect(http.StatusSeeOther, loginPathFor(form.Role)+"?failed=1")
	}

	if err := startSession(c, h.sessions, h.cookie, account); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, account.Role.HomePath())
}

// Signup creates a local account and continues to profile completion.
//
// @Summary      Sign up with email and password
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password, at least 6 characters"
// @Param        role      formData  string  true  "client or freelancer"
// @Success      303  "Redirect to /{role}/profile/new"
// @Failure      303  "Redirect back to the role's login page"
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&form); err != nil {
		h.log.Info().Err(err).Str("role", form.Role).Msg("signup form rejected")
		return c.Redirect(http.StatusSeeOther, loginPathFor(form.Role)+"?failed=1")
	}

	account, err := h.local.Register(c.Request().Context(), form.Email, form.Password, form.Role)
	metrics.AuthAttemptsTotal.WithLabelValues("signup", metrics.RoleLabel(form.Role), metrics.Outcome(err)).Inc()
	if err != nil {
		h.log.Info().Err(err).Str("role", form.Role).Msg("signup rejected")
		return c.Redirect(http.StatusSeeOther, loginPathFor(form.Role)+"?failed=1")
	}
	metrics.AccountsCreatedTotal.WithLabelValues(account.Role.String(), "local").Inc()

	if err := startSession(c, h.sessions, h.cookie, account); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, account.Role.ProfileFormPath())
}

// Logout destroys the current session, if any.
//
// @Summary      Log out
// @Tags         auth
// @Success      303  "Redirect to /"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.cookie.Name)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
		metrics.SessionsDestroyedTotal.Inc()
	}

	middleware.ClearCookie(c, h.cookie.Name, h.cookie.Secure)
	return c.Redirect(http.StatusSeeOther, "/")
}
