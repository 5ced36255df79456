package auth

import (
	"context"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// Login authenticates a user and issues a session token. Unknown email and
// wrong password collapse into the one invalid-credentials outcome so the
// boundary cannot be used to enumerate accounts. Storage failures propagate
// untouched.
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return AuthResult{}, domain.ErrInvalidCredentials()
		}
		return AuthResult{}, err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	return s.issueFor(u)
}
