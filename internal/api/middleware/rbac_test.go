package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

func newRoleContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/"+role+"/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("role")
	c.SetParamValues(role)
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := newRoleContext("client")
	SetIdentity(c, domain.Identity{AccountID: "1", Role: domain.RoleClient})

	called := false
	handler := RequireRole("role")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsOtherRole(t *testing.T) {
	c, rec := newRoleContext("freelancer")
	SetIdentity(c, domain.Identity{AccountID: "1", Role: domain.RoleClient})

	handler := RequireRole("role")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_RedirectsAnonymous(t *testing.T) {
	c, rec := newRoleContext("freelancer")

	handler := RequireRole("role")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/freelancer_auth" {
		t.Fatalf("unexpected redirect %q", loc)
	}
}

func TestRequireRole_UnknownRole(t *testing.T) {
	c, _ := newRoleContext("admin")
	SetIdentity(c, domain.Identity{AccountID: "1", Role: domain.RoleClient})

	handler := RequireRole("role")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}
