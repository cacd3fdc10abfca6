package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowbase/internal/handler/http/auth"
)

var testSecret = []byte("unit-test-secret-at-least-32-chars!!")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"userId": "u1",
		"email":  "u1@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerify_Success(t *testing.T) {
	v := auth.NewVerifier(testSecret)

	id, err := v.Verify("Bearer " + signToken(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: "u1", Email: "u1@example.com"}, id)
}

func TestVerify_MissingCredential(t *testing.T) {
	v := auth.NewVerifier(testSecret)

	tests := []struct {
		name  string
		authz string
	}{
		{"empty header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"prefix without token", "Bearer "},
		{"lowercase scheme", "bearer " + signToken(t, validClaims())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.authz)
			assert.ErrorIs(t, err, auth.ErrMissingCredential)
		})
	}
}

func TestVerify_InvalidCredential(t *testing.T) {
	v := auth.NewVerifier(testSecret)

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noUser := validClaims()
	delete(noUser, "userId")

	noEmail := validClaims()
	delete(noEmail, "email")

	otherKey := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
	wrongSig, err := otherKey.SignedString([]byte("a-different-secret-entirely-here"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.jwt"},
		{"wrong signature", wrongSig},
		{"expired", signToken(t, expired)},
		{"missing userId claim", signToken(t, noUser)},
		{"missing email claim", signToken(t, noEmail)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify("Bearer " + tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidCredential)
		})
	}
}

func TestVerify_RejectsNonHS256(t *testing.T) {
	v := auth.NewVerifier(testSecret)

	// alg=none style tokens must never pass.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims())
	unsigned, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify("Bearer " + unsigned)
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)
}
