package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ndraey/bookstore-api/internal/domain"
)

type BookRepo struct {
	db *sql.DB
}

func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

const bookColumns = `id, title, author, description, category, language, total_pages`

func scanBook(scan func(dest ...any) error) (domain.Book, error) {
	var b domain.Book
	err := scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Description,
		&b.Category,
		&b.Language,
		&b.TotalPages,
	)
	return b, err
}

// ---------- books.BookRepo ----------

func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	const q = `
SELECT ` + bookColumns + `
FROM books
ORDER BY title ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	out := []domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id string) (domain.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Book{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + bookColumns + `
FROM books
WHERE id = $1
LIMIT 1;
`
	b, err := scanBook(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if isNoRows(err) {
			return domain.Book{}, domain.ErrBookNotFound()
		}
		return domain.Book{}, domain.ErrDBUnavailable(err)
	}
	return b, nil
}

func (r *BookRepo) Create(ctx context.Context, b domain.Book) (domain.Book, error) {
	if b.ID == "" {
		return domain.Book{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO books (id, title, author, description, category, language, total_pages)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING ` + bookColumns + `;
`
	created, err := scanBook(r.db.QueryRowContext(ctx, q,
		b.ID, b.Title, b.Author, b.Description, b.Category, b.Language, b.TotalPages,
	).Scan)
	if err != nil {
		return domain.Book{}, domain.ErrDBUnavailable(err)
	}
	return created, nil
}

func (r *BookRepo) Update(ctx context.Context, b domain.Book) (domain.Book, error) {
	if b.ID == "" {
		return domain.Book{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE books
SET title = $2,
    author = $3,
    description = $4,
    category = $5,
    language = $6,
    total_pages = $7
WHERE id = $1
RETURNING ` + bookColumns + `;
`
	updated, err := scanBook(r.db.QueryRowContext(ctx, q,
		b.ID, b.Title, b.Author, b.Description, b.Category, b.Language, b.TotalPages,
	).Scan)
	if err != nil {
		if isNoRows(err) {
			return domain.Book{}, domain.ErrBookNotFound()
		}
		return domain.Book{}, domain.ErrDBUnavailable(err)
	}
	return updated, nil
}

func (r *BookRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM books WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrBookNotFound()
	}
	return nil
}
