package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService stores the identity projection of an account server-side.
type SessionService struct {
	store ports.SessionStore
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

func NewSessionService(store ports.SessionStore, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{store: store, ttl: ttl, log: log, now: time.Now}
}

// Create opens a session for account. Only the id, role and email are kept.
func (s *SessionService) Create(ctx context.Context, account *domain.Account) (*domain.Session, error) {
	if account == nil || account.ID == "" || !account.Role.Valid() {
		return nil, fmt.Errorf("create session: %w", domain.ErrInvalidRole)
	}
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sess := &domain.Session{
		ID:        id,
		Identity:  account.Identity(),
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// Resolve returns the identity bound to id or domain.ErrSessionNotFound.
func (s *SessionService) Resolve(ctx context.Context, id string) (domain.Identity, error) {
	if id == "" {
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Identity{}, err
	}
	if !sess.ExpiresAt.IsZero() && s.now().After(sess.ExpiresAt) {
		if err := s.store.Delete(ctx, id); err != nil {
			s.log.Warn().Err(err).Msg("failed to delete expired session")
		}
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	if !sess.Identity.Role.Valid() {
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	return sess.Identity, nil
}

// Destroy removes the session. Unknown ids are not an error.
func (s *SessionService) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.store.Delete(ctx, id)
}

// TTL is the lifetime given to new sessions.
func (s *SessionService) TTL() time.Duration { return s.ttl }

func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
