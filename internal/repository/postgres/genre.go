package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type genreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) repository.GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *domain.Genre) error {
	query := `INSERT INTO genres (name, slug, description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.Name, g.Slug, g.Description, time.Now(), time.Now()).Scan(&g.ID)
}

func (r *genreRepository) GetByID(ctx context.Context, id int32) (*domain.Genre, error) {
	g := &domain.Genre{}
	query := `SELECT id, name, slug, COALESCE(description, ''), created_on, updated_on FROM genres WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Slug, &g.Description, &g.CreatedOn, &g.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGenreNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *genreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	query := `SELECT id, name, slug, COALESCE(description, ''), created_on, updated_on FROM genres ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug, &g.Description, &g.CreatedOn, &g.UpdatedOn); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// ListPopular ranks genres by book count, most first. The inner join drops
// genres that hold no books.
func (r *genreRepository) ListPopular(ctx context.Context, limit int) ([]domain.GenreWithCount, error) {
	query := `SELECT g.id, g.name, g.slug, COALESCE(g.description, ''), g.created_on, g.updated_on, count(b.id)
		FROM genres g
		JOIN books b ON b.genre_id = g.id
		GROUP BY g.id
		ORDER BY count(b.id) DESC, g.name
		LIMIT $1`
	return r.listWithCounts(ctx, query, limit)
}

func (r *genreRepository) Search(ctx context.Context, query string) ([]domain.GenreWithCount, error) {
	q := `SELECT g.id, g.name, g.slug, COALESCE(g.description, ''), g.created_on, g.updated_on, count(b.id)
		FROM genres g
		LEFT JOIN books b ON b.genre_id = g.id
		WHERE g.name ILIKE $1 OR COALESCE(g.description, '') ILIKE $1
		GROUP BY g.id
		ORDER BY g.name`
	return r.listWithCounts(ctx, q, "%"+query+"%")
}

func (r *genreRepository) listWithCounts(ctx context.Context, query string, args ...interface{}) ([]domain.GenreWithCount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.GenreWithCount
	for rows.Next() {
		var g domain.GenreWithCount
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug, &g.Description, &g.CreatedOn, &g.UpdatedOn, &g.BookCount); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genreRepository) Update(ctx context.Context, g *domain.Genre) error {
	query := `UPDATE genres SET name=$1, slug=$2, description=$3, updated_on=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, g.Name, g.Slug, g.Description, time.Now(), g.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}
