package crypto

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

func TestPasswordHashing(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)
	hash, err := v.Hash("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := v.Compare("secret1", hash); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := v.Compare("wrong", hash); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestCompare_TamperedDigest(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)
	hash, err := v.Hash("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	tampered := []string{
		"not-a-bcrypt-digest",
		hash[:20],
		strings.Replace(hash, "$2a$", "$9z$", 1),
	}
	for _, digest := range tampered {
		err := v.Compare("secret1", digest)
		if !errors.Is(err, domain.ErrVerifier) {
			t.Fatalf("digest %q: expected ErrVerifier, got %v", digest, err)
		}
		if errors.Is(err, domain.ErrInvalidCredential) {
			t.Fatalf("digest %q: verifier failure reported as invalid credential", digest)
		}
	}
}

func TestNewBcryptVerifier_CostFallback(t *testing.T) {
	if v := NewBcryptVerifier(0); v.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", v.cost)
	}
	if v := NewBcryptVerifier(bcrypt.MinCost); v.cost != bcrypt.MinCost {
		t.Fatalf("expected min cost, got %d", v.cost)
	}
}
