package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api/handler"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/middleware"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/views"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"

	_ "github.com/shashikanth-ui/Freelance-Portal/docs"
)

// Dependencies are the collaborators the HTTP layer is built from.
// Provider and States may be nil when federated sign-in is not configured.
type Dependencies struct {
	Local     ports.LocalAuthenticator
	Federated ports.FederatedAuthenticator
	Sessions  ports.SessionManager
	Profiles  ports.ProfileService
	Provider  ports.IdentityProvider
	States    handler.StateCodec
	Cookie    handler.SessionCookie
	Health    map[string]handler.PingFunc
	Log       zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: deps.Registerer,
	}))
	e.Use(middleware.Session(deps.Sessions, deps.Cookie.Name, deps.Log))

	// --- Public pages ---
	pages := handler.NewPageHandler(deps.Provider != nil)
	e.GET("/", pages.Index)
	for _, role := range domain.Roles {
		e.GET(role.LoginPath(), pages.Login(role))
	}

	// --- Local auth ---
	authHandler := handler.NewAuthHandler(deps.Local, deps.Sessions, deps.Cookie, deps.Log)
	e.POST("/login", authHandler.Login)
	e.POST("/signup", authHandler.Signup)
	e.POST("/logout", authHandler.Logout)

	// --- Federated auth ---
	if deps.Provider != nil && deps.States != nil {
		oauthHandler := handler.NewOAuthHandler(deps.Provider, deps.States, deps.Federated, deps.Sessions, deps.Cookie, deps.Log)
		oauth := e.Group("/auth/" + deps.Provider.Name())
		oauth.GET("", oauthHandler.Begin)
		oauth.GET("/callback", oauthHandler.Callback)
	}

	// --- Role-scoped pages (session + matching role) ---
	profileHandler := handler.NewProfileHandler(deps.Profiles, deps.Log)
	roleGroup := e.Group("/:role", middleware.RequireRole("role"))
	roleGroup.GET("/profile/new", profileHandler.NewForm)
	roleGroup.POST("/profile", profileHandler.Submit)
	roleGroup.GET("/home", profileHandler.Home)

	// --- Health probes, metrics and docs ---
	healthHandler := handler.NewHealthHandler(deps.Health)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
