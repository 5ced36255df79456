package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndraey/bookstore-api/internal/domain"
)

func TestRegisterSuccess(t *testing.T) {
	svc, users, _, tokens := newSvcForTest(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{
		Email:     "Alice@Example.com",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", res.Email)
	assert.Equal(t, "Alice", res.FirstName)
	assert.Equal(t, "Smith", res.LastName)
	assert.Equal(t, "User", res.Role)
	assert.NotEmpty(t, res.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), res.ExpiresAt, 5*time.Second)

	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.NotEqual(t, "secret123", stored.PasswordHash, "plaintext must never be stored")
	assert.Equal(t, "hash:secret123", stored.PasswordHash)
	assert.False(t, stored.CreatedAt.IsZero())

	issued := tokens.last(t)
	assert.Equal(t, stored.ID, issued.subjectID)
	assert.Equal(t, "alice@example.com", issued.email)
	assert.Equal(t, "User", issued.role)
	assert.Equal(t, "Alice", issued.extra["firstName"])
	assert.Equal(t, "Smith", issued.extra["lastName"])
}

func TestRegisterExplicitRole(t *testing.T) {
	svc, _, _, tokens := newSvcForTest(t)

	res, err := svc.Register(context.Background(), RegisterInput{
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "Admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "Admin", res.Role)
	assert.Equal(t, "Admin", tokens.last(t).role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newSvcForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "bob@example.com", Password: "other"})
	requireCode(t, err, "email_already_exists")

	// Case only differs; still the same account.
	_, err = svc.Register(ctx, RegisterInput{Email: "BOB@EXAMPLE.COM", Password: "other"})
	requireCode(t, err, "email_already_exists")
}

func TestRegisterInsertConflictRace(t *testing.T) {
	// The pre-check passes but the insert hits the unique constraint, as when
	// a concurrent request wins the race between check and insert.
	svc, users, _, _ := newSvcForTest(t)
	users.createErr = domain.ErrDuplicateEmail(nil)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "carol@example.com", Password: "pw"})
	requireCode(t, err, "email_already_exists")
}

func TestRegisterStorageErrorPropagates(t *testing.T) {
	svc, users, _, _ := newSvcForTest(t)
	users.existsErr = domain.ErrDBUnavailable(errors.New("connection refused"))

	_, err := svc.Register(context.Background(), RegisterInput{Email: "dave@example.com", Password: "pw"})
	requireCode(t, err, "db_unavailable")
}

func TestRegisterHashFailure(t *testing.T) {
	svc, _, hasher, _ := newSvcForTest(t)
	hasher.hashFn = func(string) (string, error) { return "", errors.New("boom") }

	_, err := svc.Register(context.Background(), RegisterInput{Email: "erin@example.com", Password: "pw"})
	requireCode(t, err, "hash_failed")
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _, tokens := newSvcForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email:     "frank@example.com",
		Password:  "secret123",
		FirstName: "Frank",
		LastName:  "Jones",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "frank@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "frank@example.com", res.Email)
	assert.Equal(t, "Frank", res.FirstName)
	assert.Equal(t, "User", res.Role)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "User", tokens.last(t).role)
}

func TestLoginEmailCaseAndWhitespaceInsensitive(t *testing.T) {
	svc, _, _, _ := newSvcForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "grace@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "  GRACE@Example.COM  ", "pw")
	require.NoError(t, err)
}

func TestLoginFailuresCollapse(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	svc, _, _, _ := newSvcForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "heidi@example.com", Password: "right"})
	require.NoError(t, err)

	cases := map[string]struct {
		email, password string
	}{
		"unknown email":  {"nobody@example.com", "right"},
		"wrong password": {"heidi@example.com", "wrong"},
		"empty password": {"heidi@example.com", ""},
		"empty email":    {"", "right"},
	}
	var messages []string
	for name, tc := range cases {
		_, err := svc.Login(ctx, tc.email, tc.password)
		if !domain.Is(err, "invalid_credentials") {
			t.Fatalf("%s: expected invalid_credentials, got %v", name, err)
		}
		messages = append(messages, err.Error())
	}
	for _, m := range messages {
		assert.Equal(t, messages[0], m, "failure messages must not differ")
	}
}

func TestLoginStorageErrorIsNotCollapsed(t *testing.T) {
	svc, users, _, _ := newSvcForTest(t)
	users.getByEmailErr = domain.ErrDBUnavailable(errors.New("connection refused"))

	_, err := svc.Login(context.Background(), "ivan@example.com", "pw")
	requireCode(t, err, "db_unavailable")
	assert.False(t, domain.Is(err, "invalid_credentials"))
}

func TestUserExists(t *testing.T) {
	svc, _, _, _ := newSvcForTest(t)
	ctx := context.Background()

	ok, err := svc.UserExists(ctx, "judy@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Register(ctx, RegisterInput{Email: "judy@example.com", Password: "pw"})
	require.NoError(t, err)

	ok, err = svc.UserExists(ctx, "  JUDY@example.com ")
	require.NoError(t, err)
	assert.True(t, ok)
}
