package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired inspects the token's claims without verifying the signature
// and reports whether it is visibly past its expiry. Signature checking is
// the server's job; the peek only lets the client skip a validation round
// trip that is guaranteed to fail. Opaque (non-JWT) tokens and tokens
// without an exp claim report false and go through remote validation.
func tokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return false
	}
	return exp.Before(now)
}

// tokenExpiry returns the token's expiry claim, if it carries one.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
