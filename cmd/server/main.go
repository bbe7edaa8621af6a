// Command server runs the freelance portal HTTP service.
//
//	@title			Freelance Portal API
//	@version		1.0
//	@description	Authentication, sessions and onboarding for clients and freelancers.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/api"
	"github.com/shashikanth-ui/Freelance-Portal/internal/api/handler"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/service"
	"github.com/shashikanth-ui/Freelance-Portal/internal/infrastructure/crypto"
	mongostore "github.com/shashikanth-ui/Freelance-Portal/internal/infrastructure/db/mongo"
	"github.com/shashikanth-ui/Freelance-Portal/internal/infrastructure/db/postgres"
	redisstore "github.com/shashikanth-ui/Freelance-Portal/internal/infrastructure/db/redis"
	"github.com/shashikanth-ui/Freelance-Portal/internal/infrastructure/oauth"
	"github.com/shashikanth-ui/Freelance-Portal/internal/pkg/config"
	"github.com/shashikanth-ui/Freelance-Portal/pkg/logger"
)

// accountStore is the account and profile persistence both backends provide.
type accountStore interface {
	ports.CredentialStore
	ports.ProfileStore
}

func main() {
	envErr := godotenv.Load()

	cfg := config.MustLoad()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "freelance-portal",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found; relying on existing environment")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()
	health := map[string]handler.PingFunc{}

	store, closeStore, err := openStore(ctx, cfg, health)
	if err != nil {
		return err
	}
	defer closeStore()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	health["redis"] = redisstore.Pinger(rdb)

	verifier := crypto.NewBcryptVerifier(cfg.Session.BcryptCost)
	sessions := service.NewSessionService(redisstore.NewSessionStore(rdb), cfg.Session.TTL, log)

	deps := api.Dependencies{
		Local:     service.NewAuthService(store, verifier, log),
		Federated: service.NewFederatedService(store, log),
		Sessions:  sessions,
		Profiles:  service.NewProfileService(store, log),
		Cookie: handler.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		Health: health,
		Log:    log,
	}
	if cfg.OAuth.GoogleEnabled() {
		deps.Provider = oauth.NewGoogleProvider(oauth.GoogleConfig{
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL(),
		})
		deps.States = oauth.NewStateCodec(cfg.OAuth.StateSecret, cfg.OAuth.StateTTL)
	} else {
		log.Warn().Msg("google sign-in disabled: GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set")
	}

	e, err := api.NewRouter(deps)
	if err != nil {
		return err
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddress()).Str("store", cfg.StoreDriver).Msg("freelance portal listening")
		if err := e.Start(cfg.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	return e.Shutdown(shutdownCtx)
}

// openStore connects the configured account backend and registers its
// readiness probe.
func openStore(ctx context.Context, cfg *config.Config, health map[string]handler.PingFunc) (accountStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := mongostore.NewAuthRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		health["mongodb"] = mongostore.Pinger(client)
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.Connect(ctx, postgres.Config{
			URL:      cfg.Postgres.URL,
			MaxConns: cfg.Postgres.MaxConns,
		})
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewStore(pool)
		health["postgres"] = store.Ping
		return store, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
