package books

import (
	"context"

	"github.com/google/uuid"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// Service exposes the catalog operations. Authorization is decided at the
// transport boundary; by the time a call lands here the caller is already
// allowed to make it.
type Service struct {
	books BookRepo
}

func NewService(books BookRepo) *Service {
	return &Service{books: books}
}

type CreateInput struct {
	Title       string
	Author      string
	Description string
	Category    string
	Language    string
	TotalPages  int
}

type UpdateInput struct {
	Title       string
	Author      string
	Description string
	Category    string
	Language    string
	TotalPages  int
}

func (s *Service) List(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Book, error) {
	b := domain.Book{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Category:    in.Category,
		Language:    in.Language,
		TotalPages:  in.TotalPages,
	}
	return s.books.Create(ctx, b)
}

// Update replaces every mutable field of the book. The id cannot change.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (domain.Book, error) {
	if _, err := s.books.GetByID(ctx, id); err != nil {
		return domain.Book{}, err
	}
	b := domain.Book{
		ID:          id,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Category:    in.Category,
		Language:    in.Language,
		TotalPages:  in.TotalPages,
	}
	return s.books.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.books.Delete(ctx, id)
}
