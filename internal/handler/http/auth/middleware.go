package auth

import (
	"context"
	"errors"
	"net/http"

	"knowbase/internal/handler/http/respond"
	"knowbase/internal/observability/metrics"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// IdentityFromContext returns the caller identity stored by Middleware.
// The boolean is false for requests that never passed through it.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}

// WithIdentity stores an identity in the context. Exported for handler tests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// Middleware requires a valid bearer credential on every request it wraps.
// A request without a credential is rejected with 401; a request with a
// credential that fails verification is rejected with 403. On success the
// resolved Identity is placed in the request context for handlers.
func Middleware(verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := verifier.Verify(r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, ErrMissingCredential) {
					metrics.AuthFailuresTotal.WithLabelValues("unauthenticated").Inc()
					respond.SafeError(w, http.StatusUnauthorized, err)
					return
				}
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				respond.SafeError(w, http.StatusForbidden, err)
				return
			}
			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
