// Package jwtutils inspects bearer tokens without verifying their signature.
// The orchestrator never holds the signing key; it only needs to know whether
// a token is still worth sending.
package jwtutils

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

var parser = jwt.NewParser()

// ExpiresAt decodes token and returns its expiry. ok is false when the token carries no exp claim.
func ExpiresAt(token string) (expiresAt time.Time, ok bool, err error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(token), claims); err != nil {
		return time.Time{}, false, errors.Wrap(err, "can't decode token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "invalid exp claim")
	}
	if exp == nil {
		return time.Time{}, false, nil
	}
	return exp.Time, true, nil
}

// IsExpired reports whether token is expired at now.
// A token that can't be decoded counts as expired; a token without exp never expires.
func IsExpired(token string, now time.Time) bool {
	expiresAt, ok, err := ExpiresAt(token)
	if err != nil {
		return true
	}
	if !ok {
		return false
	}
	return !now.Before(expiresAt)
}
