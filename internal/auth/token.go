package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sunziping2016/YAWeChatTicket/internal/domain"
)

// Identity is the resolved caller: a user id plus a capability mask.
// Everything downstream of the transport adapters works against this,
// never against raw credentials.
type Identity struct {
	UserID string
	Caps   int
}

func (i Identity) Can(c int) bool {
	return i.Caps&c != 0
}

type claims struct {
	jwt.RegisteredClaims
	Caps int `json:"caps"`
}

// Verifier validates HMAC-signed tokens. The signing key is plain
// configuration handed in at construction; there is no process-wide
// secret.
type Verifier struct {
	secret []byte
	ttl    time.Duration
}

func NewVerifier(secret string, ttl time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), ttl: ttl}
}

// Verify resolves a credential to an identity.
func (v *Verifier) Verify(token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Identity{}, domain.ErrUnauthorized
	}
	if c.Subject == "" {
		return Identity{}, domain.ErrUnauthorized
	}

	return Identity{UserID: c.Subject, Caps: c.Caps}, nil
}

// Issue signs a token for the user. Used by supporting tooling and
// tests; interactive login lives outside this service.
func (v *Verifier) Issue(userID string, caps int) (string, error) {
	if len(v.secret) == 0 {
		return "", errors.New("empty signing key")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
		Caps: caps,
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ForUser builds the identity carried by trusted in-process adapters
// (the bot resolves accounts itself, no token involved).
func ForUser(u *domain.User) Identity {
	return Identity{UserID: u.ID, Caps: u.Caps}
}
