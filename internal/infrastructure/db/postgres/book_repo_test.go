package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndraey/bookstore-api/internal/domain"
)

func newMockBookRepo(t *testing.T) (*BookRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookRepo(db), mock
}

func bookRows(books ...domain.Book) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "author", "description", "category", "language", "total_pages",
	})
	for _, b := range books {
		rows.AddRow(b.ID, b.Title, b.Author, b.Description, b.Category, b.Language, b.TotalPages)
	}
	return rows
}

func TestBookRepoList(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	t.Run("two_rows", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM books").
			WillReturnRows(bookRows(
				domain.Book{ID: "b1", Title: "Alpha", TotalPages: 100},
				domain.Book{ID: "b2", Title: "Beta", TotalPages: 200},
			))

		books, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Alpha", books[0].Title)
		assert.Equal(t, 200, books[1].TotalPages)
	})

	t.Run("empty_is_not_nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM books").WillReturnRows(bookRows())

		books, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("db_error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM books").WillReturnError(errors.New("down"))

		_, err := repo.List(context.Background())
		assert.True(t, domain.Is(err, "db_unavailable"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepoGetByID(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM books WHERE id").
		WithArgs("b1").
		WillReturnRows(bookRows(domain.Book{ID: "b1", Title: "Alpha", Language: "English"}))

	b, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", b.Title)
	assert.Equal(t, "English", b.Language)

	mock.ExpectQuery("SELECT (.+) FROM books WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.True(t, domain.Is(err, "book_not_found"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepoCreate(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	b := domain.Book{
		ID: "b1", Title: "Alpha", Author: "Ann", Description: "d",
		Category: "Programming", Language: "English", TotalPages: 321,
	}

	mock.ExpectQuery("INSERT INTO books").
		WithArgs("b1", "Alpha", "Ann", "d", "Programming", "English", 321).
		WillReturnRows(bookRows(b))

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, b, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepoUpdate(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	b := domain.Book{ID: "b1", Title: "Alpha 2nd ed", TotalPages: 340}

	mock.ExpectQuery("UPDATE books").
		WithArgs("b1", "Alpha 2nd ed", "", "", "", "", 340).
		WillReturnRows(bookRows(b))

	updated, err := repo.Update(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "Alpha 2nd ed", updated.Title)

	mock.ExpectQuery("UPDATE books").
		WithArgs("missing", "", "", "", "", "", 0).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Update(context.Background(), domain.Book{ID: "missing"})
	assert.True(t, domain.Is(err, "book_not_found"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepoDelete(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "b1"))

	mock.ExpectExec("DELETE FROM books").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.True(t, domain.Is(err, "book_not_found"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
