package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

const bookDetailColumns = `b.id, b.name, b.isbn, b.author_id, b.genre_id, b.is_available,
	COALESCE(b.summary, ''), COALESCE(b.photo_url, ''), COALESCE(b.photo_key, ''), b.created_on, b.updated_on,
	COALESCE(a.name, ''), COALESCE(g.name, '')`

const bookDetailJoins = `FROM books b
	LEFT JOIN authors a ON a.id = b.author_id
	LEFT JOIN genres g ON g.id = b.genre_id`

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (name, isbn, author_id, genre_id, is_available, summary, photo_url, photo_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Name, b.ISBN, b.AuthorID, b.GenreID, b.IsAvailable, b.Summary, b.PhotoURL, b.PhotoKey, time.Now(), time.Now()).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, name, isbn, author_id, genre_id, is_available, COALESCE(summary, ''), COALESCE(photo_url, ''), COALESCE(photo_key, ''), created_on, updated_on FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.ISBN, &b.AuthorID, &b.GenreID, &b.IsAvailable, &b.Summary, &b.PhotoURL, &b.PhotoKey, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.BookDetail, error) {
	return r.list(ctx, "")
}

func (r *bookRepository) ListAvailable(ctx context.Context) ([]domain.BookDetail, error) {
	return r.list(ctx, "WHERE b.is_available = true")
}

func (r *bookRepository) ListByGenre(ctx context.Context, genreID int32) ([]domain.BookDetail, error) {
	return r.list(ctx, "WHERE b.genre_id = $1", genreID)
}

// Search scans name, ISBN, summary and author name with a single
// case-insensitive contains match.
func (r *bookRepository) Search(ctx context.Context, query string) ([]domain.BookDetail, error) {
	where := `WHERE b.name ILIKE $1 OR b.isbn ILIKE $1 OR COALESCE(b.summary, '') ILIKE $1 OR COALESCE(a.name, '') ILIKE $1`
	return r.list(ctx, where, "%"+query+"%")
}

func (r *bookRepository) list(ctx context.Context, where string, args ...interface{}) ([]domain.BookDetail, error) {
	query := "SELECT " + bookDetailColumns + " " + bookDetailJoins
	if where != "" {
		query += " " + where
	}
	query += " ORDER BY b.name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.BookDetail
	for rows.Next() {
		var b domain.BookDetail
		if err := rows.Scan(&b.ID, &b.Name, &b.ISBN, &b.AuthorID, &b.GenreID, &b.IsAvailable,
			&b.Summary, &b.PhotoURL, &b.PhotoKey, &b.CreatedOn, &b.UpdatedOn,
			&b.AuthorName, &b.GenreName); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET name=$1, isbn=$2, author_id=$3, genre_id=$4, summary=$5, photo_url=$6, photo_key=$7, updated_on=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, b.Name, b.ISBN, b.AuthorID, b.GenreID, b.Summary, b.PhotoURL, b.PhotoKey, time.Now(), b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}
