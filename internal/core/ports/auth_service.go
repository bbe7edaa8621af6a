package ports

import (
	"context"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

// PasswordVerifier hashes and checks passwords. Compare returns
// domain.ErrInvalidCredential on mismatch and domain.ErrVerifier when the
// digest itself is unusable.
type PasswordVerifier interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) error
}

// IdentityProvider is an external OAuth2-style sign-in collaborator.
type IdentityProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (domain.Assertion, error)
}

// LocalAuthenticator validates email/password pairs for a declared role.
type LocalAuthenticator interface {
	Authenticate(ctx context.Context, email, password, role string) (*domain.Account, error)
	Register(ctx context.Context, email, password, role string) (*domain.Account, error)
}

// FederatedAuthenticator finds or creates an account from a provider assertion.
type FederatedAuthenticator interface {
	FindOrCreate(ctx context.Context, role string, assertion domain.Assertion) (domain.AuthResult, error)
}

// SessionManager opens, resolves and closes authenticated sessions.
type SessionManager interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Session, error)
	Resolve(ctx context.Context, id string) (domain.Identity, error)
	Destroy(ctx context.Context, id string) error
}

// ProfileService drives the onboarding transition to a completed profile.
type ProfileService interface {
	Complete(ctx context.Context, who domain.Identity, profile domain.Profile) (*domain.Profile, error)
	Get(ctx context.Context, who domain.Identity) (*domain.Profile, error)
}
