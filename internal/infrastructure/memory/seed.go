package memory

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// Hasher is the minimal surface we need for seeding.
type Hasher interface {
	Hash(password string) (string, error)
}

// SeedUsers creates initial users for local development (in-memory only).
// Safe to call multiple times (duplicates ignored).
func SeedUsers(ctx context.Context, users *UserRepo, hasher Hasher) {
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

		if _, err := users.Create(ctx, u); err != nil {
			// ignore duplicates / restart
			continue
		}
	}

	log.Println("[seed] in-memory users seeded")
}

// SeedBooks loads a small starter catalog for local development.
func SeedBooks(ctx context.Context, books *BookRepo) {
	seeds := []domain.Book{
		{
			ID:          uuid.NewString(),
			Title:       "The Go Programming Language",
			Author:      "Alan A. A. Donovan, Brian W. Kernighan",
			Description: "A tour of Go from basics to reflection.",
			Category:    "Programming",
			Language:    "English",
			TotalPages:  380,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Designing Data-Intensive Applications",
			Author:      "Martin Kleppmann",
			Description: "The big ideas behind reliable, scalable systems.",
			Category:    "Programming",
			Language:    "English",
			TotalPages:  616,
		},
	}

	for _, b := range seeds {
		if _, err := books.Create(ctx, b); err != nil {
			continue
		}
	}

	log.Println("[seed] in-memory books seeded")
}
