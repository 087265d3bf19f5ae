package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the application reads from a backend bearer token.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that has passed.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// TokenInspector reads claims of backend-issued JWTs. It does not verify signatures:
// the backend remains the only authority on tokens.
type TokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector builds an inspector.
func NewTokenInspector() *TokenInspector {
	return &TokenInspector{parser: jwt.NewParser()}
}

// Inspect extracts subject and expiry. Opaque (non-JWT) tokens yield an empty TokenInfo and an error.
func (ti *TokenInspector) Inspect(token string) (TokenInfo, error) {
	if token == "" {
		return TokenInfo{}, errors.New("empty token")
	}
	claims := jwt.MapClaims{}
	if _, _, err := ti.parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, err
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// TTL returns how long the token should be kept: until its expiry, or fallback
// when it has none or cannot be read. A non-positive result means already expired.
func (ti *TokenInspector) TTL(token string, now time.Time, fallback time.Duration) time.Duration {
	info, err := ti.Inspect(token)
	if err != nil || info.ExpiresAt.IsZero() {
		return fallback
	}
	return info.ExpiresAt.Sub(now)
}
