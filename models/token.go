package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims holds the claims the client can read from its own bearer token
// without verifying the signature. The server remains the authority on token
// validity; these values are advisory (e.g. to warn before expiry).
type TokenClaims struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseTokenClaims extracts the subject and expiry from a JWT bearer token.
// The signature is not verified: the client does not hold the signing key.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, err
	}

	out := TokenClaims{UserID: sub}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
