package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var _ ports.IdentityProvider = (*GoogleProvider)(nil)

// GoogleConfig holds the OAuth client registration.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleProvider signs users in with Google's OAuth2 / OpenID Connect flow.
type GoogleProvider struct {
	conf        *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type userInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Exchange trades the authorization code for a token and reads the user's
// subject and verified email. Every failure is reported as domain.ErrProvider.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (domain.Assertion, error) {
	if code == "" {
		return domain.Assertion{}, fmt.Errorf("%w: missing authorization code", domain.ErrProvider)
	}
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return domain.Assertion{}, fmt.Errorf("%w: exchange code: %w", domain.ErrProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return domain.Assertion{}, fmt.Errorf("%w: build userinfo request: %w", domain.ErrProvider, err)
	}
	resp, err := p.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return domain.Assertion{}, fmt.Errorf("%w: userinfo request: %w", domain.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Assertion{}, fmt.Errorf("%w: userinfo status %d", domain.ErrProvider, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.Assertion{}, fmt.Errorf("%w: decode userinfo: %w", domain.ErrProvider, err)
	}

	assertion := domain.Assertion{Subject: info.Sub}
	if info.Email != "" && info.EmailVerified {
		assertion.Emails = []string{info.Email}
	}
	return assertion, nil
}
