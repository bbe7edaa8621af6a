package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

const (
	stateIssuer     = "freelance-portal"
	defaultStateTTL = 10 * time.Minute
)

// StateClaims travel through the provider redirect in the state parameter.
type StateClaims struct {
	Role  string `json:"role"`
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// StateCodec signs and verifies the OAuth state parameter. The nonce is
// also kept in a browser cookie so a callback can only complete the flow
// that the same browser started.
type StateCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStateCodec(secret string, ttl time.Duration) *StateCodec {
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	return &StateCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed state carrying role and the nonce that must be
// stored client-side.
func (c *StateCodec) Issue(role domain.Role) (state, nonce string, err error) {
	if !role.Valid() {
		return "", "", domain.ErrInvalidRole
	}
	nonce, err = randomNonce()
	if err != nil {
		return "", "", err
	}

	now := c.now().UTC()
	claims := StateClaims{
		Role:  string(role),
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	state, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", "", fmt.Errorf("sign state: %w", err)
	}
	return state, nonce, nil
}

// Verify checks the signature, expiry and nonce binding, then returns the
// role the flow was started for. The role string is returned unparsed so the
// federated strategy performs the allow-list check itself.
func (c *StateCodec) Verify(state, nonce string) (string, error) {
	claims := &StateClaims{}
	tkn, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("%w: invalid state: %w", domain.ErrProvider, err)
	}
	if nonce == "" || claims.Nonce != nonce {
		return "", fmt.Errorf("%w: %w", domain.ErrProvider, errors.New("state nonce mismatch"))
	}
	return claims.Role, nil
}

func randomNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
