package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the lifetime of a session token and its cookie.
const TTL = 24 * time.Hour

// CookieName is the HTTP-only cookie carrying the session token.
const CookieName = "access_token"

// ErrInvalidToken covers missing, malformed, tampered and expired tokens.
// Callers must not distinguish between those causes.
var ErrInvalidToken = errors.New("invalid session token")

// Codec issues and verifies signed session tokens. The secret is process-wide
// configuration loaded once at startup; rotating it invalidates every
// outstanding token.
type Codec struct {
	secret []byte
}

// NewCodec builds a Codec from the configured secret. Outside production a
// development fallback is used when the secret is empty.
func NewCodec(secret, env string) (*Codec, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		if env == "production" {
			return nil, fmt.Errorf("SESSION_SECRET required in production")
		}
		secret = "dev-secret"
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue mints a signed token embedding the user ID, expiring in TTL.
func (c *Codec) Issue(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature, shape and expiry and returns the embedded user ID.
// Verification is all-or-nothing; any defect yields ErrInvalidToken.
func (c *Codec) Verify(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrInvalidToken
	}
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
