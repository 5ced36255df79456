package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndraey/bookstore-api/internal/domain"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// Register creates a user and returns a fresh session artifact. A duplicate
// normalized email yields the duplicate outcome whether it is caught by the
// pre-check or by the storage unique constraint: the check and the insert are
// not atomic, and the constraint is the authoritative guard for the race.
func (s *Service) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)

	exists, err := s.users.Exists(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, domain.ErrEmailAlreadyExists()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, domain.ErrHashFailed(err)
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = string(domain.RoleUser)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		if domain.Is(err, "duplicate_email") {
			// Lost the check-then-insert race; same outcome as the pre-check.
			return AuthResult{}, domain.ErrEmailAlreadyExists()
		}
		return AuthResult{}, err
	}

	return s.issueFor(created)
}
