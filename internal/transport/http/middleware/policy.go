package middleware

import (
	"net/http"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// RequirePolicy evaluates a named access policy against the claim set placed
// in context by Auth. Missing claims mean Auth was not applied (or the token
// carried no identity), which is an auth failure, not a policy denial.
func RequirePolicy(p domain.Policy, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeErr(w, r, domain.ErrTokenInvalid(nil))
				return
			}

			if !p.Allows(claims) {
				writeErr(w, r, domain.ErrPolicyDenied(string(p)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
