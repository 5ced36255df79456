package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/ndraey/bookstore-api/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers inserts the development accounts. Duplicate inserts are ignored
// so the seed is restart safe. Never called outside the dev environment.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		Email     string
		FirstName string
		LastName  string
		Role      string
		Pass      string
	}

	seeds := []seedUser{
		{Email: "admin@example.com", FirstName: "Ada", LastName: "Admin", Role: "Admin", Pass: "AdminPassword123!"},
		{Email: "user@example.com", FirstName: "Uma", LastName: "User", Role: "User", Pass: "UserPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Email, err)
			continue
		}

		u := domain.User{
			ID:           uuid.NewString(),
			Email:        s.Email,
			PasswordHash: hash,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			Role:         s.Role,
		}

		if _, err := repo.Create(ctx, u); err != nil {
			// ignore duplicates (restart safe)
			continue
		}
	}

	log.Println("[seed] postgres users seeded")
}
