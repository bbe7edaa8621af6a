package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements the local email/password strategy and signup.
type AuthService struct {
	store    ports.CredentialStore
	verifier ports.PasswordVerifier
	log      zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, verifier ports.PasswordVerifier, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, verifier: verifier, log: log}
}

// Authenticate looks the email up in the table for role and checks password.
// Failures are domain.ErrInvalidRole, domain.ErrAccountNotFound,
// domain.ErrInvalidCredential, or a wrapped domain.ErrStore / domain.ErrVerifier.
func (s *AuthService) Authenticate(ctx context.Context, email, password, role string) (*domain.Account, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredential
	}

	account, err := s.store.FindByEmail(ctx, r, email)
	if err != nil {
		return nil, err
	}

	if account.IsFederated() {
		s.log.Debug().Str("role", r.String()).Str("account_id", account.ID).Msg("local login attempted on federated account")
		return nil, domain.ErrInvalidCredential
	}

	if err := s.verifier.Compare(password, account.PasswordHash); err != nil {
		return nil, err
	}
	return account, nil
}

// Register creates a local account. A concurrent signup for the same email
// loses on the store's unique index and gets domain.ErrAccountExists.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.Account, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalidCredential)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidCredential, minPasswordLen)
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         r,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAccountExists) {
			s.log.Error().Err(err).Str("role", r.String()).Msg("create account failed")
		}
		return nil, err
	}

	s.log.Info().Str("role", r.String()).Str("account_id", created.ID).Msg("account registered")
	return created, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
