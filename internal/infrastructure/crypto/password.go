package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

// BcryptVerifier hashes passwords with bcrypt at a fixed cost.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a verifier using cost, or bcrypt.DefaultCost when
// cost is outside bcrypt's accepted range.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrVerifier, err)
	}
	return string(hash), nil
}

// Compare maps a plain mismatch to domain.ErrInvalidCredential and any
// problem with the stored digest to domain.ErrVerifier.
func (v *BcryptVerifier) Compare(plaintext, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.ErrInvalidCredential
	default:
		return fmt.Errorf("%w: %v", domain.ErrVerifier, err)
	}
}
