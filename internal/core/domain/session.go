package domain

import "time"

// Identity is the minimal per-request view of an authenticated account.
type Identity struct {
	AccountID string `json:"account_id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
}

// Session correlates an opaque cookie token with an Identity.
type Session struct {
	ID        string
	Identity  Identity
	ExpiresAt time.Time
}
