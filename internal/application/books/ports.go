package books

import (
	"context"

	"github.com/ndraey/bookstore-api/internal/domain"
)

/*
BookRepo is the catalog storage port. Implementations return the structured
domain errors (book_not_found, db_unavailable) so callers can branch on codes
instead of driver types.
*/
type BookRepo interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id string) (domain.Book, error)
	Create(ctx context.Context, b domain.Book) (domain.Book, error)
	Update(ctx context.Context, b domain.Book) (domain.Book, error)
	Delete(ctx context.Context, id string) error
}
