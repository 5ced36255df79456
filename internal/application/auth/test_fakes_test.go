package auth

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/ndraey/bookstore-api/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]string // normalized email -> id

	// injected errors (if set, method returns error)
	getByEmailErr error
	existsErr     error
	createErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]string{},
	}
}

func (f *fakeUserRepo) add(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[strings.ToLower(u.Email)] = u.ID
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	id, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	norm := strings.ToLower(u.Email)
	if _, ok := f.byEmail[norm]; ok {
		return domain.User{}, domain.ErrDuplicateEmail(nil)
	}
	f.byID[u.ID] = u
	f.byEmail[norm] = u.ID
	return u, nil
}

type fakeHasher struct {
	hashFn   func(pw string) (string, error)
	verifyFn func(pw, digest string) bool
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Verify(pw, digest string) bool {
	if f.verifyFn != nil {
		return f.verifyFn(pw, digest)
	}
	return digest == "hash:"+pw
}

type issuedToken struct {
	subjectID string
	email     string
	role      string
	extra     map[string]string
}

type fakeTokens struct {
	mu       sync.Mutex
	issued   []issuedToken
	issueErr error
}

func (f *fakeTokens) Issue(subjectID, email, role string, extra map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.issueErr != nil {
		return "", f.issueErr
	}
	f.issued = append(f.issued, issuedToken{subjectID: subjectID, email: email, role: role, extra: extra})
	return "token-for-" + subjectID, nil
}

func (f *fakeTokens) Validate(token string) (domain.ClaimSet, error) {
	return domain.ClaimSet{}, domain.ErrTokenInvalid(nil)
}

func (f *fakeTokens) last(t *testing.T) issuedToken {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.issued) == 0 {
		t.Fatalf("no token was issued")
	}
	return f.issued[len(f.issued)-1]
}

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeTokens) {
	t.Helper()
	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	tokens := &fakeTokens{}
	svc := NewService(users, hasher, tokens, Config{})
	return svc, users, hasher, tokens
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}
