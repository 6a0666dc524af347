package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type authorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *domain.Author) error {
	query := `INSERT INTO authors (name, description, photo_url, photo_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Name, a.Description, a.PhotoURL, a.PhotoKey, time.Now(), time.Now()).Scan(&a.ID)
}

func (r *authorRepository) GetByID(ctx context.Context, id int32) (*domain.Author, error) {
	a := &domain.Author{}
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(photo_url, ''), COALESCE(photo_key, ''), created_on, updated_on FROM authors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Description, &a.PhotoURL, &a.PhotoKey, &a.CreatedOn, &a.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *authorRepository) List(ctx context.Context) ([]domain.Author, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(photo_url, ''), COALESCE(photo_key, ''), created_on, updated_on FROM authors ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.PhotoURL, &a.PhotoKey, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *authorRepository) Update(ctx context.Context, a *domain.Author) error {
	query := `UPDATE authors SET name=$1, description=$2, photo_url=$3, photo_key=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, a.Name, a.Description, a.PhotoURL, a.PhotoKey, time.Now(), a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrAuthorNotFound
	}
	return nil
}
