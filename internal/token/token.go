// Package token issues and verifies the bearer tokens that authenticate
// API requests. Tokens are stateless HS256 JWTs: there is no server-side
// session table and no revocation list, so a token remains valid until
// its natural expiry. Logout is a client-side discard.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kharcha/internal/config"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

const issuer = "kharcha-api"

// signingKey returns the process-wide JWT secret from configuration.
func signingKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// Claims represents the claims embedded in an auth token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Issue generates a signed token for the user, expiring after the
// configured JWT lifetime.
func Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.ID,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(signingKey())
}

// Verify parses and validates a token string. It fails with
// ErrInvalidToken on a bad signature, malformed structure, or expiry;
// callers cannot distinguish the cases.
func Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingKey(), nil
	})

	if err != nil || !tok.Valid {
		return nil, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}

	return claims, nil
}
