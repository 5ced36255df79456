package postgres

import (
	"time"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// userRow mirrors the users table layout.
type userRow struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		FirstName:    ur.FirstName,
		LastName:     ur.LastName,
		Role:         ur.Role,
		CreatedAt:    ur.CreatedAt,
		UpdatedAt:    ur.UpdatedAt,
	}
}
