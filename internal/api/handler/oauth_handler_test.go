package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

func newOAuthHandler(provider *stubProvider, federated *stubFederated, sessions *stubSessions) *OAuthHandler {
	return NewOAuthHandler(provider, stubStates{}, federated, sessions, testCookie, zerolog.Nop())
}

func callbackRequest(query string, nonce string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?"+query, nil)
	if nonce != "" {
		req.AddCookie(&http.Cookie{Name: NonceCookie, Value: nonce})
	}
	return req
}

func TestOAuthHandler_Begin(t *testing.T) {
	e := newTestEcho(t)
	h := newOAuthHandler(&stubProvider{}, &stubFederated{}, &stubSessions{})

	req := httptest.NewRequest(http.MethodGet, "/auth/google?role=freelancer", nil)
	rec := httptest.NewRecorder()
	if err := h.Begin(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); !strings.Contains(loc, "state=state-freelancer") {
		t.Fatalf("unexpected provider redirect %q", loc)
	}
	if ck := findCookie(rec, NonceCookie); ck == nil || ck.Value != "n1" || !ck.HttpOnly {
		t.Fatalf("expected nonce cookie, got %+v", ck)
	}
}

func TestOAuthHandler_Begin_InvalidRole(t *testing.T) {
	e := newTestEcho(t)
	h := newOAuthHandler(&stubProvider{}, &stubFederated{}, &stubSessions{})

	req := httptest.NewRequest(http.MethodGet, "/auth/google?role=admin", nil)
	rec := httptest.NewRecorder()
	err := h.Begin(e.NewContext(req, rec))
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestOAuthHandler_Callback_Routing(t *testing.T) {
	cases := []struct {
		name        string
		justCreated bool
		want        string
	}{
		{"new account goes to onboarding", true, "/freelancer/profile/new"},
		{"returning account goes home", false, "/freelancer/home"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho(t)
			provider := &stubProvider{
				exchangeFn: func(ctx context.Context, code string) (domain.Assertion, error) {
					if code != "c1" {
						t.Fatalf("unexpected code %q", code)
					}
					return domain.Assertion{Subject: "g-1", Emails: []string{"f@x.com"}}, nil
				},
			}
			federated := &stubFederated{
				findOrCreateFn: func(ctx context.Context, role string, a domain.Assertion) (domain.AuthResult, error) {
					if role != "freelancer" || a.PrimaryEmail() != "f@x.com" {
						t.Fatalf("unexpected args: %s %+v", role, a)
					}
					return domain.AuthResult{
						Account:     &domain.Account{ID: "3", Email: "f@x.com", Role: domain.RoleFreelancer},
						JustCreated: tc.justCreated,
					}, nil
				},
			}
			sessions := &stubSessions{}
			h := newOAuthHandler(provider, federated, sessions)

			rec := httptest.NewRecorder()
			if err := h.Callback(e.NewContext(callbackRequest("state=state-freelancer&code=c1", "n1"), rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if loc := rec.Header().Get(echo.HeaderLocation); loc != tc.want {
				t.Fatalf("expected redirect %q, got %q", tc.want, loc)
			}
			if len(sessions.created) != 1 {
				t.Fatalf("expected a session to be opened")
			}
		})
	}
}

func TestOAuthHandler_Callback_NonceMismatch(t *testing.T) {
	e := newTestEcho(t)
	provider := &stubProvider{}
	sessions := &stubSessions{}
	h := newOAuthHandler(provider, &stubFederated{}, sessions)

	rec := httptest.NewRecorder()
	if err := h.Callback(e.NewContext(callbackRequest("state=state-client&code=c1", "other"), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if provider.exchanges != 0 || len(sessions.created) != 0 {
		t.Fatalf("nothing should happen after a state mismatch")
	}
}

func TestOAuthHandler_Callback_ProviderError(t *testing.T) {
	e := newTestEcho(t)
	provider := &stubProvider{}
	h := newOAuthHandler(provider, &stubFederated{}, &stubSessions{})

	rec := httptest.NewRecorder()
	if err := h.Callback(e.NewContext(callbackRequest("state=state-client&error=access_denied", "n1"), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/client_auth?failed=1" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	if provider.exchanges != 0 {
		t.Fatalf("exchange should not run after a provider error")
	}
}

func TestOAuthHandler_Callback_StrategyFailure(t *testing.T) {
	e := newTestEcho(t)
	provider := &stubProvider{
		exchangeFn: func(context.Context, string) (domain.Assertion, error) {
			return domain.Assertion{Subject: "g-1"}, nil
		},
	}
	federated := &stubFederated{
		findOrCreateFn: func(context.Context, string, domain.Assertion) (domain.AuthResult, error) {
			return domain.AuthResult{}, domain.ErrProvider
		},
	}
	sessions := &stubSessions{}
	h := newOAuthHandler(provider, federated, sessions)

	rec := httptest.NewRecorder()
	if err := h.Callback(e.NewContext(callbackRequest("state=state-client&code=c1", "n1"), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/client_auth?failed=1" {
		t.Fatalf("unexpected redirect %q", loc)
	}
	if len(sessions.created) != 0 {
		t.Fatalf("no session expected")
	}
}
