package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/metrics"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

// NonceCookie binds the OAuth state to the browser that started the flow.
const NonceCookie = "fp_oauth_nonce"

// StateCodec carries the requested role across the provider redirect.
type StateCodec interface {
	Issue(role domain.Role) (state, nonce string, err error)
	Verify(state, nonce string) (string, error)
}

// OAuthHandler drives the federated sign-in redirect and callback.
type OAuthHandler struct {
	provider  ports.IdentityProvider
	states    StateCodec
	federated ports.FederatedAuthenticator
	sessions  ports.SessionManager
	cookie    SessionCookie
	log       zerolog.Logger
}

func NewOAuthHandler(
	provider ports.IdentityProvider,
	states StateCodec,
	federated ports.FederatedAuthenticator,
	sessions ports.SessionManager,
	cookie SessionCookie,
	log zerolog.Logger,
) *OAuthHandler {
	return &OAuthHandler{
		provider:  provider,
		states:    states,
		federated: federated,
		sessions:  sessions,
		cookie:    cookie,
		log:       log,
	}
}

// Begin redirects the browser to the identity provider.
//
// @Summary      Start federated sign-in
// @Tags         auth
// @Param        role  query  string  true  "client or freelancer"
// @Success      302  "Redirect to the identity provider"
// @Failure      400  {object}  map[string]string
// @Router       /auth/google [get]
func (h *OAuthHandler) Begin(c echo.Context) error {
	role, err := domain.ParseRole(c.QueryParam("role"))
	if err != nil {
		return err
	}

	state, nonce, err := h.states.Issue(role)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     NonceCookie,
		Value:    nonce,
		Path:     "/auth",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback completes federated sign-in. New accounts continue to profile
// completion; returning accounts go home.
//
// @Summary      Federated sign-in callback
// @Tags         auth
// @Param        state  query  string  true   "Signed state issued by /auth/google"
// @Param        code   query  string  false  "Authorization code"
// @Param        error  query  string  false  "Provider error"
// @Success      303  "Redirect to /{role}/profile/new or /{role}/home"
// @Failure      303  "Redirect to the role's login page"
// @Router       /auth/google/callback [get]
func (h *OAuthHandler) Callback(c echo.Context) error {
	nonce := ""
	if ck, err := c.Cookie(NonceCookie); err == nil {
		nonce = ck.Value
	}
	c.SetCookie(&http.Cookie{Name: NonceCookie, Path: "/auth", MaxAge: -1, HttpOnly: true, Secure: h.cookie.Secure})

	role, err := h.states.Verify(c.QueryParam("state"), nonce)
	if err != nil {
		return h.reject(c, role, err)
	}

	if c.QueryParam("error") != "" {
		return h.reject(c, role, domain.ErrProvider)
	}

	assertion, err := h.provider.Exchange(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return h.reject(c, role, err)
	}

	result, err := h.federated.FindOrCreate(c.Request().Context(), role, assertion)
	if err != nil {
		return h.reject(c, role, err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("federated", result.Account.Role.String(), metrics.Outcome(nil)).Inc()
	if result.JustCreated {
		metrics.AccountsCreatedTotal.WithLabelValues(result.Account.Role.String(), h.provider.Name()).Inc()
	}

	if err := startSession(c, h.sessions, h.cookie, result.Account); err != nil {
		return err
	}

	if result.JustCreated {
		return c.Redirect(http.StatusSeeOther, result.Account.Role.ProfileFormPath())
	}
	return c.Redirect(http.StatusSeeOther, result.Account.Role.HomePath())
}

func (h *OAuthHandler) reject(c echo.Context, role string, err error) error {
	metrics.AuthAttemptsTotal.WithLabelValues("federated", metrics.RoleLabel(role), metrics.Outcome(err)).Inc()
	h.log.Info().
		Err(err).
		Str("provider", h.provider.Name()).
		Str("role", role).
		Str("provider_error", c.QueryParam("error")).
		Msg("federated login rejected")

	return c.Redirect(http.StatusSeeOther, loginPathFor(role)+"?failed=1")
}
