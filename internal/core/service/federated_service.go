package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

// FederatedService links identity-provider assertions to per-role accounts.
type FederatedService struct {
	store ports.CredentialStore
	log   zerolog.Logger
}

func NewFederatedService(store ports.CredentialStore, log zerolog.Logger) *FederatedService {
	return &FederatedService{store: store, log: log}
}

// FindOrCreate returns the account for the assertion's first email in the
// role's table, creating it on first sight. JustCreated is true only for
// the call that inserted the row.
func (s *FederatedService) FindOrCreate(ctx context.Context, role string, assertion domain.Assertion) (domain.AuthResult, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return domain.AuthResult{}, err
	}

	email := assertion.PrimaryEmail()
	if email == "" || assertion.Subject == "" {
		return domain.AuthResult{}, fmt.Errorf("%w: assertion carries no email or subject", domain.ErrProvider)
	}

	existing, err := s.store.FindByEmail(ctx, r, email)
	switch {
	case err == nil:
		return domain.AuthResult{Account: existing}, nil
	case !errors.Is(err, domain.ErrAccountNotFound):
		return domain.AuthResult{}, err
	}

	created, err := s.store.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: domain.FederatedPlaceholder(assertion.Subject),
		Role:         r,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrAccountExists) {
		// Another request inserted the same email between our read and write.
		existing, err = s.store.FindByEmail(ctx, r, email)
		if err != nil {
			return domain.AuthResult{}, err
		}
		return domain.AuthResult{Account: existing}, nil
	}
	if err != nil {
		return domain.AuthResult{}, err
	}

	s.log.Info().Str("role", r.String()).Str("account_id", created.ID).Msg("federated account created")
	return domain.AuthResult{Account: created, JustCreated: true}, nil
}
