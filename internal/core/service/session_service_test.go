package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

func TestSessionService_CreateAndResolve(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, time.Hour, zerolog.Nop())
	account := &domain.Account{ID: "client-1", Email: "a@x.com", Role: domain.RoleClient, PasswordHash: "$2a$10$secret"}

	sess, err := svc.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(sess.ID) < 40 {
		t.Fatalf("session id too short: %q", sess.ID)
	}

	who, err := svc.Resolve(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	want := domain.Identity{AccountID: "client-1", Role: domain.RoleClient, Email: "a@x.com"}
	if who != want {
		t.Fatalf("expected %+v, got %+v", want, who)
	}
}

func TestSessionService_DistinctIDs(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), time.Hour, zerolog.Nop())
	account := &domain.Account{ID: "1", Role: domain.RoleFreelancer}

	a, _ := svc.Create(context.Background(), account)
	b, _ := svc.Create(context.Background(), account)
	if a.ID == b.ID {
		t.Fatalf("expected distinct session ids")
	}
}

func TestSessionService_Destroy(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), time.Hour, zerolog.Nop())
	sess, err := svc.Create(context.Background(), &domain.Account{ID: "1", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Destroy(context.Background(), sess.ID); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestSessionService_Expired(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, time.Minute, zerolog.Nop())
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	sess, err := svc.Create(context.Background(), &domain.Account{ID: "1", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	svc.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := svc.Resolve(context.Background(), sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}
	if _, ok := store.sessions[sess.ID]; ok {
		t.Fatalf("expired session was not removed")
	}
}

func TestSessionService_RejectsInvalidAccount(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), time.Hour, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Account{ID: "1", Role: "admin"}); err == nil {
		t.Fatalf("expected error for invalid role")
	}
	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty id, got %v", err)
	}
}

func TestSessionService_DefaultTTL(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), 0, zerolog.Nop())
	if svc.TTL() != defaultSessionTTL {
		t.Fatalf("expected default ttl, got %s", svc.TTL())
	}
}
