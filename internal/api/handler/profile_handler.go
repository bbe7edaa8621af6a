package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/metrics"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/views"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

// ProfileHandler serves onboarding and the role home page. Every route sits
// behind middleware.RequireRole, so the identity's role matches :role.
type ProfileHandler struct {
	profiles ports.ProfileService
	log      zerolog.Logger
}

func NewProfileHandler(profiles ports.ProfileService, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

type profileForm struct {
	Name       string  `form:"name" validate:"required,max=120"`
	Age        int     `form:"age" validate:"omitempty,gte=16,lte=120"`
	Gender     string  `form:"gender" validate:"omitempty,max=32"`
	PhotoURL   string  `form:"photo_url" validate:"omitempty,url,max=512"`
	Company    string  `form:"company" validate:"omitempty,max=120"`
	Headline   string  `form:"headline" validate:"omitempty,max=160"`
	Skills     string  `form:"skills" validate:"omitempty,max=512"`
	HourlyRate float64 `form:"hourly_rate" validate:"omitempty,gte=0"`
}

func (f profileForm) toDomain() domain.Profile {
	var skills []string
	for _, s := range strings.Split(f.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return domain.Profile{
		Name:       f.Name,
		Age:        f.Age,
		Gender:     strings.TrimSpace(f.Gender),
		PhotoPath:  strings.TrimSpace(f.PhotoURL),
		Company:    strings.TrimSpace(f.Company),
		Headline:   strings.TrimSpace(f.Headline),
		Skills:     skills,
		HourlyRate: f.HourlyRate,
	}
}

// NewForm renders the profile-completion form. Accounts that already
// completed onboarding are sent home.
//
// @Summary      Profile completion form
// @Tags         profile
// @Produce      html
// @Param        role  path  string  true  "client or freelancer"
// @Success      200  "HTML form"
// @Success      303  "Redirect to /{role}/home when the profile exists"
// @Failure      403  {object}  map[string]string
// @Router       /{role}/profile/new [get]
func (h *ProfileHandler) NewForm(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	_, err = h.profiles.Get(c.Request().Context(), who)
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, who.Role.HomePath())
	case !errors.Is(err, domain.ErrProfileNotFound):
		return err
	}

	return c.Render(http.StatusOK, views.PageProfileForm, views.ProfileFormPage{Role: who.Role})
}

// Submit stores the completed profile.
//
// @Summary      Complete profile
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Param        role         path      string  true   "client or freelancer"
// @Param        name         formData  string  true   "Display name"
// @Param        age          formData  int     false  "Age"
// @Param        gender       formData  string  false  "Gender"
// @Param        photo_url    formData  string  false  "Photo URL"
// @Param        company      formData  string  false  "Company (client)"
// @Param        headline     formData  string  false  "Headline (freelancer)"
// @Param        skills       formData  string  false  "Comma separated skills (freelancer)"
// @Param        hourly_rate  formData  number  false  "Hourly rate (freelancer)"
// @Success      303  "Redirect to /{role}/home"
// @Failure      400  "Form re-rendered with the validation error"
// @Failure      403  {object}  map[string]string
// @Router       /{role}/profile [post]
func (h *ProfileHandler) Submit(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var form profileForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, views.PageProfileForm, views.ProfileFormPage{Role: who.Role, Error: "invalid form"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, views.PageProfileForm, views.ProfileFormPage{Role: who.Role, Error: err.Error()})
	}

	_, err = h.profiles.Complete(c.Request().Context(), who, form.toDomain())
	switch {
	case err == nil:
		metrics.ProfilesCompletedTotal.WithLabelValues(who.Role.String()).Inc()
	case errors.Is(err, domain.ErrProfileExists):
		h.log.Debug().Str("account_id", who.AccountID).Msg("profile already completed")
	default:
		return err
	}
	return c.Redirect(http.StatusSeeOther, who.Role.HomePath())
}

// Home renders the role's home page, or sends the account back to
// onboarding when no profile exists yet.
//
// @Summary      Role home page
// @Tags         profile
// @Produce      html
// @Param        role  path  string  true  "client or freelancer"
// @Success      200  "HTML page"
// @Success      303  "Redirect to /{role}/profile/new"
// @Failure      403  {object}  map[string]string
// @Router       /{role}/home [get]
func (h *ProfileHandler) Home(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Get(c.Request().Context(), who)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return c.Redirect(http.StatusSeeOther, who.Role.ProfileFormPath())
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, views.PageHome, views.HomePage{Identity: who, Profile: profile})
}
