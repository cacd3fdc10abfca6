// Package auth verifies bearer credentials and scopes requests to the
// authenticated caller. Token issuance belongs to a separate credential
// service; this package only consumes tokens it is handed.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for credential verification. The two classes map to
// distinct status codes: a missing credential is 401, a credential that is
// present but fails verification is 403.
var (
	// ErrMissingCredential indicates that no usable bearer credential
	// accompanied the request (header absent, wrong scheme, or an empty
	// token after the scheme prefix).
	ErrMissingCredential = errors.New("missing bearer token")

	// ErrInvalidCredential indicates that a credential was presented but
	// failed verification: bad signature, expired, or missing the
	// required identity claims.
	ErrInvalidCredential = errors.New("invalid or expired token")
)

// Identity is the caller resolved from a verified credential. It lives for
// one request and is never persisted. The claims are trusted as-is once
// the signature checks out.
type Identity struct {
	UserID string
	Email  string
}

// Verifier validates HS256-signed bearer tokens. It holds only the
// immutable signing secret, so a single instance is safe for concurrent
// use on every request.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier around the given signing secret.
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// Verify resolves the Authorization header value into an Identity.
// Verification is purely computational; there are no side effects.
func (v *Verifier) Verify(authz string) (Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return Identity{}, ErrMissingCredential
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	if tokenString == "" {
		return Identity{}, ErrMissingCredential
	}

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidCredential
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidCredential
	}
	if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
		return Identity{}, ErrInvalidCredential
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrInvalidCredential
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Identity{}, ErrInvalidCredential
	}

	return Identity{UserID: userID, Email: email}, nil
}
