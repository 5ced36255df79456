package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// BookRepo is the in-memory books.BookRepo. List returns books sorted by
// title, matching the postgres implementation.
type BookRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.Book
}

func NewBookRepo() *BookRepo {
	return &BookRepo{byID: make(map[string]domain.Book)}
}

func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Book, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id string) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return domain.Book{}, domain.ErrBookNotFound()
	}
	return b, nil
}

func (r *BookRepo) Create(ctx context.Context, b domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		return domain.Book{}, domain.ErrInternal(nil)
	}
	r.byID[b.ID] = b
	return b, nil
}

func (r *BookRepo) Update(ctx context.Context, b domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[b.ID]; !ok {
		return domain.Book{}, domain.ErrBookNotFound()
	}
	r.byID[b.ID] = b
	return b, nil
}

func (r *BookRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrBookNotFound()
	}
	delete(r.byID, id)
	return nil
}
