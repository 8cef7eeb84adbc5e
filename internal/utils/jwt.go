package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt returns the exp claim of tokenString without verifying the
// signature. The client cannot verify server tokens; it only reads the
// expiry to avoid sending requests that are bound to be rejected.
//
// A token without an exp claim yields the zero time.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// TokenExpired reports whether tokenString carries an exp claim that lies
// before now. Tokens that cannot be parsed are not considered expired; the
// server has the final word on them.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil || exp.IsZero() {
		return false
	}
	return !now.Before(exp)
}
