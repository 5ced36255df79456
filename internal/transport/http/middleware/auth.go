package middleware

import (
	"net/http"
	"strings"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// TokenValidator is the minimal surface the middleware needs from the token
// service.
type TokenValidator interface {
	Validate(token string) (domain.ClaimSet, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <token> and injects the validated
// claim set into the request context. A missing header and a bad token are
// distinct errors; every token defect beyond that is one opaque outcome.
func Auth(validator TokenValidator, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid(nil))
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid(nil))
				return
			}

			claims, err := validator.Validate(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if strings.TrimSpace(claims.SubjectID) == "" {
				writeErr(w, r, domain.ErrTokenInvalid(nil))
				return
			}

			ctx := WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
