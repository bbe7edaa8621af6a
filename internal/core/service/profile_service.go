package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

// ProfileService completes onboarding by writing the profile row.
type ProfileService struct {
	store ports.ProfileStore
	log   zerolog.Logger
}

func NewProfileService(store ports.ProfileStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{store: store, log: log}
}

// Complete inserts the profile for who. Role and account id always come from
// the session, never from the submitted form.
func (s *ProfileService) Complete(ctx context.Context, who domain.Identity, p domain.Profile) (*domain.Profile, error) {
	if !who.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	p.AccountID = who.AccountID
	p.Role = who.Role
	p.Name = strings.TrimSpace(p.Name)
	p.CreatedAt = time.Now().UTC()

	// Fields belonging to the other role are dropped.
	switch who.Role {
	case domain.RoleClient:
		p.Headline, p.Skills, p.HourlyRate = "", nil, 0
	case domain.RoleFreelancer:
		p.Company = ""
	}

	if err := s.store.CreateProfile(ctx, &p); err != nil {
		return nil, fmt.Errorf("complete profile: %w", err)
	}
	s.log.Info().Str("role", who.Role.String()).Str("account_id", who.AccountID).Msg("profile completed")
	return &p, nil
}

// Get fetches the profile for who from the role's table.
func (s *ProfileService) Get(ctx context.Context, who domain.Identity) (*domain.Profile, error) {
	if !who.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.store.FindProfile(ctx, who.Role, who.AccountID)
}
