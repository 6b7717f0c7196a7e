// Package admintoken mints and verifies the admin session token. The token
// is an HS256 JWT keyed by the shared admin secret: it only spares the admin
// from re-entering the secret on every request. The whole gate is cosmetic,
// not a real authentication system, and must not be treated as one.
package admintoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the admin session cookie.
const CookieName = "admin_session"

const subject = "admin"

// DefaultTTL bounds how long an admin session lives before re-login.
const DefaultTTL = 12 * time.Hour

// Mint issues a signed admin session token valid for ttl.
func Mint(secret string, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("admin secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// Verify reports whether raw is a currently valid admin session token.
func Verify(secret, raw string) error {
	if secret == "" {
		return fmt.Errorf("admin secret is required")
	}
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return fmt.Errorf("parse admin token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != subject {
		return fmt.Errorf("admin token has wrong subject")
	}
	return nil
}
