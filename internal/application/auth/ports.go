package auth

import (
	"context"

	"github.com/ndraey/bookstore-api/internal/domain"
)

/*
UserRepo
--------
Persistence port for credentials. Lookups are case-insensitive on email; the
storage layer owns the uniqueness guarantee (check-then-insert here is not
atomic, see Register).
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
One-way digest for password verification. The default implementation is the
deterministic unsalted SHA-256 the stored hashes were written with.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

/*
TokenService
------------
Issues and validates signed session tokens. Used by this service and by the
bearer-auth middleware.
*/
type TokenService interface {
	Issue(subjectID, email, role string, extra map[string]string) (string, error)
	Validate(token string) (domain.ClaimSet, error)
}
