package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/views"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

var testCookie = SessionCookie{Name: "fp_session"}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	r, err := views.New()
	if err != nil {
		t.Fatalf("views: %v", err)
	}
	e.Renderer = r
	return e
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

type stubLocal struct {
	authenticateFn func(ctx context.Context, email, password, role string) (*domain.Account, error)
	registerFn     func(ctx context.Context, email, password, role string) (*domain.Account, error)
}

func (s *stubLocal) Authenticate(ctx context.Context, email, password, role string) (*domain.Account, error) {
	return s.authenticateFn(ctx, email, password, role)
}

func (s *stubLocal) Register(ctx context.Context, email, password, role string) (*domain.Account, error) {
	return s.registerFn(ctx, email, password, role)
}

type stubSessions struct {
	created   []*domain.Account
	destroyed []string
}

func (s *stubSessions) Create(_ context.Context, account *domain.Account) (*domain.Session, error) {
	s.created = append(s.created, account)
	return &domain.Session{
		ID:        "sid-1",
		Identity:  account.Identity(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *stubSessions) Resolve(context.Context, string) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrSessionNotFound
}

func (s *stubSessions) Destroy(_ context.Context, id string) error {
	s.destroyed = append(s.destroyed, id)
	return nil
}

type stubProvider struct {
	exchangeFn func(ctx context.Context, code string) (domain.Assertion, error)
	exchanges  int
}

func (p *stubProvider) Name() string { return "google" }

func (p *stubProvider) AuthCodeURL(state string) string {
	return "https://idp.example/auth?state=" + url.QueryEscape(state)
}

func (p *stubProvider) Exchange(ctx context.Context, code string) (domain.Assertion, error) {
	p.exchanges++
	return p.exchangeFn(ctx, code)
}

// stubStates encodes the role directly in the state and expects nonce "n1".
type stubStates struct{}

func (stubStates) Issue(role domain.Role) (string, string, error) {
	return "state-" + role.String(), "n1", nil
}

func (stubStates) Verify(state, nonce string) (string, error) {
	if nonce != "n1" || !strings.HasPrefix(state, "state-") {
		return "", domain.ErrProvider
	}
	return strings.TrimPrefix(state, "state-"), nil
}

type stubFederated struct {
	findOrCreateFn func(ctx context.Context, role string, a domain.Assertion) (domain.AuthResult, error)
}

func (s *stubFederated) FindOrCreate(ctx context.Context, role string, a domain.Assertion) (domain.AuthResult, error) {
	return s.findOrCreateFn(ctx, role, a)
}

type stubProfiles struct {
	completeFn func(ctx context.Context, who domain.Identity, p domain.Profile) (*domain.Profile, error)
	getFn      func(ctx context.Context, who domain.Identity) (*domain.Profile, error)
}

func (s *stubProfiles) Complete(ctx context.Context, who domain.Identity, p domain.Profile) (*domain.Profile, error) {
	return s.completeFn(ctx, who, p)
}

func (s *stubProfiles) Get(ctx context.Context, who domain.Identity) (*domain.Profile, error) {
	return s.getFn(ctx, who)
}
