package domain

import (
	"strings"
	"time"
)

// federatedPrefix marks a password column that holds a provider subject
// instead of a bcrypt digest.
const federatedPrefix = "federated:"

// Account is a row in one of the per-role credential tables.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// FederatedPlaceholder builds the value stored in place of a password hash
// for accounts created through an identity provider.
func FederatedPlaceholder(subject string) string {
	return federatedPrefix + subject
}

// IsFederated reports whether the account was created by the federated
// strategy and therefore has no usable local password.
func (a *Account) IsFederated() bool {
	return strings.HasPrefix(a.PasswordHash, federatedPrefix)
}

// Identity returns the session projection of the account.
func (a *Account) Identity() Identity {
	return Identity{AccountID: a.ID, Role: a.Role, Email: a.Email}
}

// AuthResult wraps an authenticated account with whether this call created it.
type AuthResult struct {
	Account     *Account
	JustCreated bool
}

// Assertion is what an identity provider hands back after a successful exchange.
type Assertion struct {
	Subject string
	Emails  []string
}

// PrimaryEmail returns the first asserted email, or "" when there is none.
func (a Assertion) PrimaryEmail() string {
	for _, e := range a.Emails {
		if e = strings.TrimSpace(e); e != "" {
			return strings.ToLower(e)
		}
	}
	return ""
}
