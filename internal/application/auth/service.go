package auth

import (
	"context"
	"strings"
	"time"

	"github.com/ndraey/bookstore-api/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	tokens TokenService

	tokenExpiry time.Duration
}

type Config struct {
	TokenExpiry time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, tokens TokenService, cfg Config) *Service {
	expiry := cfg.TokenExpiry
	if expiry <= 0 {
		expiry = 60 * time.Minute
	}
	return &Service{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		tokenExpiry: expiry,
	}
}

// AuthResult is the session artifact returned by Register and Login. It is
// never persisted.
type AuthResult struct {
	Token     string
	Email     string
	FirstName string
	LastName  string
	Role      string
	ExpiresAt time.Time
}

// UserExists reports whether a user with the normalized email is registered.
func (s *Service) UserExists(ctx context.Context, email string) (bool, error) {
	return s.users.Exists(ctx, normalizeEmail(email))
}

// issueFor builds the session artifact for a user, embedding first/last name
// as extra claims.
func (s *Service) issueFor(u domain.User) (AuthResult, error) {
	token, err := s.tokens.Issue(u.ID, u.Email, u.Role, map[string]string{
		"firstName": u.FirstName,
		"lastName":  u.LastName,
	})
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		Token:     token,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		ExpiresAt: time.Now().UTC().Add(s.tokenExpiry),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
