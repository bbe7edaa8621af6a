// Package views renders the server-side HTML pages of the portal.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

//go:embed templates/*.html
var files embed.FS

// Page names accepted by Renderer.Render.
const (
	PageIndex       = "index"
	PageLogin       = "login"
	PageProfileForm = "profile_form"
	PageHome        = "home"
)

var pages = []string{PageIndex, PageLogin, PageProfileForm, PageHome}

// LoginPage backs /client_auth and /freelancer_auth.
type LoginPage struct {
	Role          domain.Role
	GoogleEnabled bool
	Failed        bool
}

// ProfileFormPage backs the onboarding form.
type ProfileFormPage struct {
	Role  domain.Role
	Error string
}

// HomePage backs /:role/home.
type HomePage struct {
	Identity domain.Identity
	Profile  *domain.Profile
}

// Renderer implements echo.Renderer over the embedded templates. Every page
// is parsed together with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"join": func(items []string) string { return strings.Join(items, ", ") },
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
