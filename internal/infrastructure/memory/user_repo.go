package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ndraey/bookstore-api/internal/domain"
)

// UserRepo is the in-memory auth.UserRepo used when no database is reachable
// in development. Emails are keyed lowercase, matching the unique index the
// postgres implementation relies on.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // lowercased email -> userID
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[emailKey(email)]
	return ok, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return domain.User{}, domain.ErrDuplicateEmail(nil)
	}

	// ID should already be set by the service; but be defensive.
	if u.ID == "" {
		return domain.User{}, domain.ErrInternal(nil)
	}

	r.byID[u.ID] = u
	r.byEmail[key] = u.ID
	return u, nil
}
