package ports

import (
	"context"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

// CredentialStore persists accounts in one table per role. Implementations
// must select the table from the Role value only and enforce a unique email
// per role, reporting conflicts as domain.ErrAccountExists.
type CredentialStore interface {
	FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// ProfileStore persists the 1:1 profile extension of an account.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	FindProfile(ctx context.Context, role domain.Role, accountID string) (*domain.Profile, error)
}

// SessionStore keeps server-side session state keyed by an opaque id.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Load(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
