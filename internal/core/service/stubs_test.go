package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

// stubCredentialStore keeps one map per role, mirroring the per-role tables.
type stubCredentialStore struct {
	mu      sync.Mutex
	tables  map[domain.Role]map[string]*domain.Account
	nextID  int
	calls   int
	findErr error
	// createHook runs before an insert; used to simulate a racing signup.
	createHook func(account *domain.Account)
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{tables: map[domain.Role]map[string]*domain.Account{
		domain.RoleClient:     {},
		domain.RoleFreelancer: {},
	}}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (s *stubCredentialStore) FindByEmail(_ context.Context, role domain.Role, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	a, ok := s.tables[role][email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (s *stubCredentialStore) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if s.createHook != nil {
		hook := s.createHook
		s.createHook = nil
		hook(account)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	table := s.tables[account.Role]
	if _, exists := table[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	s.nextID++
	stored := cloneAccount(account)
	stored.ID = fmt.Sprintf("%s-%d", account.Role, s.nextID)
	table[stored.Email] = stored
	return cloneAccount(stored), nil
}

func (s *stubCredentialStore) insert(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	stored := cloneAccount(account)
	stored.ID = fmt.Sprintf("%s-%d", account.Role, s.nextID)
	s.tables[account.Role][account.Email] = stored
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *sess
	s.sessions[sess.ID] = &clone
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type stubProfileStore struct {
	profiles map[string]*domain.Profile
}

func newStubProfileStore() *stubProfileStore {
	return &stubProfileStore{profiles: make(map[string]*domain.Profile)}
}

func profileKey(role domain.Role, id string) string { return string(role) + ":" + id }

func (s *stubProfileStore) CreateProfile(_ context.Context, p *domain.Profile) error {
	key := profileKey(p.Role, p.AccountID)
	if _, exists := s.profiles[key]; exists {
		return domain.ErrProfileExists
	}
	clone := *p
	s.profiles[key] = &clone
	return nil
}

func (s *stubProfileStore) FindProfile(_ context.Context, role domain.Role, id string) (*domain.Profile, error) {
	p, ok := s.profiles[profileKey(role, id)]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}
