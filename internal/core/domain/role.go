package domain

import (
	"fmt"
	"strings"
)

// Role selects which credential table and UI an account belongs to.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

// Roles lists every valid role.
var Roles = []Role{RoleClient, RoleFreelancer}

// ParseRole validates untrusted input against the closed role set.
// It is the only way a caller-supplied string becomes a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleClient:
		return RoleClient, nil
	case RoleFreelancer:
		return RoleFreelancer, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

func (r Role) String() string { return string(r) }

// LoginPath is the login/signup page for the role.
func (r Role) LoginPath() string { return "/" + string(r) + "_auth" }

// HomePath is the landing page after a completed login.
func (r Role) HomePath() string { return "/" + string(r) + "/home" }

// ProfileFormPath is the first-time profile completion form.
func (r Role) ProfileFormPath() string { return "/" + string(r) + "/profile/new" }
