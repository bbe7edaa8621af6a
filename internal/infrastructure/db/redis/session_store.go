package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
	"github.com/shashikanth-ui/Freelance-Portal/internal/core/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in Redis with a TTL matching their expiry.
// Key format: session:<id>
type SessionStore struct {
	client redis.Cmdable
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client redis.Cmdable) *SessionStore {
	return &SessionStore{client: client}
}

type sessionRecord struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("save session: already expired")
	}
	payload, err := json.Marshal(sessionRecord{
		AccountID: sess.Identity.AccountID,
		Role:      string(sess.Identity.Role),
		Email:     sess.Identity.Email,
		ExpiresAt: sess.ExpiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, key(sess.ID), payload, ttl).Err()
}

func (s *SessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return &domain.Session{
		ID: id,
		Identity: domain.Identity{
			AccountID: rec.AccountID,
			Role:      domain.Role(rec.Role),
			Email:     rec.Email,
		},
		ExpiresAt: time.Unix(rec.ExpiresAt, 0).UTC(),
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, key(id)).Err()
}

func key(id string) string {
	return "session:" + id
}
