package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"client", RoleClient, true},
		{"freelancer", RoleFreelancer, true},
		{" Freelancer ", RoleFreelancer, true},
		{"admin", "", false},
		{"", "", false},
		{"client; DROP TABLE client", "", false},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseRole(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", tc.in, err)
		}
	}
}

func TestRolePaths(t *testing.T) {
	if RoleClient.LoginPath() != "/client_auth" {
		t.Fatalf("unexpected login path %s", RoleClient.LoginPath())
	}
	if RoleFreelancer.HomePath() != "/freelancer/home" {
		t.Fatalf("unexpected home path %s", RoleFreelancer.HomePath())
	}
	if RoleClient.ProfileFormPath() != "/client/profile/new" {
		t.Fatalf("unexpected profile path %s", RoleClient.ProfileFormPath())
	}
}

func TestAccountIsFederated(t *testing.T) {
	a := &Account{PasswordHash: FederatedPlaceholder("google-123")}
	if !a.IsFederated() {
		t.Fatalf("expected placeholder account to be federated")
	}
	b := &Account{PasswordHash: "$2a$10$abcdefghijklmnopqrstuv"}
	if b.IsFederated() {
		t.Fatalf("bcrypt digest reported as federated")
	}
}

func TestAssertionPrimaryEmail(t *testing.T) {
	a := Assertion{Emails: []string{"", " B@X.com ", "c@x.com"}}
	if got := a.PrimaryEmail(); got != "b@x.com" {
		t.Fatalf("expected b@x.com, got %q", got)
	}
	if got := (Assertion{}).PrimaryEmail(); got != "" {
		t.Fatalf("expected empty email, got %q", got)
	}
}
