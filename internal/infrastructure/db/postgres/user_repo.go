package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ndraey/bookstore-api/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepo) scanUserRow(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Email,
		&ur.PasswordHash,
		&ur.FirstName,
		&ur.LastName,
		&ur.Role,
		&ur.CreatedAt,
		&ur.UpdatedAt,
	)
	return ur, err
}

// isUniqueViolation reports whether err is the unique_violation postgres
// error (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// ---------- auth.UserRepo ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT id, email, password_hash, first_name, last_name, role, created_at, updated_at
FROM users
WHERE lower(email) = $1
LIMIT 1;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if isNoRows(err) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, domain.ErrMissingField("email")
	}

	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = $1);`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return exists, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}
	if u.Role == "" {
		u.Role = string(domain.RoleUser)
	}

	const q = `
INSERT INTO users (id, email, password_hash, first_name, last_name, role)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, email, password_hash, first_name, last_name, role, created_at, updated_at;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrDuplicateEmail(err)
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}
