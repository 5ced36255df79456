package dto

import (
	"strings"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// BookRequest is the payload for both create and update.
type BookRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Author      string `json:"author" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Language    string `json:"language" validate:"omitempty,max=50"`
	TotalPages  int    `json:"totalPages" validate:"gte=0"`
}

func (r *BookRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return runValidation(r)
}

type BookData struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	TotalPages  int    `json:"totalPages"`
}

func NewBookData(b domain.Book) BookData {
	return BookData{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Category:    b.Category,
		Language:    b.Language,
		TotalPages:  b.TotalPages,
	}
}

func NewBookList(books []domain.Book) []BookData {
	out := make([]BookData, 0, len(books))
	for _, b := range books {
		out = append(out, NewBookData(b))
	}
	return out
}
