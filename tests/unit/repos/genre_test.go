package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"library-backend/internal/repository/postgres"
)

func genreCountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "description", "created_on", "updated_on", "count"})
}

func TestGenreRepository_ListPopular(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGenreRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery("JOIN books b ON b.genre_id = g.id (.+) ORDER BY count\\(b.id\\) DESC").
		WithArgs(10).
		WillReturnRows(genreCountRows().
			AddRow(2, "Science Fiction", "science-fiction", "Futures", now, now, 12).
			AddRow(4, "Fantasy", "fantasy", "Dragons", now, now, 7))

	genres, err := repo.ListPopular(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, genres, 2)
	assert.Equal(t, "Science Fiction", genres[0].Name)
	assert.Equal(t, int32(12), genres[0].BookCount)
	assert.Equal(t, int32(7), genres[1].BookCount)
}

func TestGenreRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGenreRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery("g.name ILIKE \\$1 OR COALESCE\\(g.description, ''\\) ILIKE \\$1").
		WithArgs("%fic%").
		WillReturnRows(genreCountRows().
			AddRow(2, "Science Fiction", "science-fiction", "Futures", now, now, 12))

	genres, err := repo.Search(ctx, "fic")
	assert.NoError(t, err)
	assert.Len(t, genres, 1)
	assert.Equal(t, "science-fiction", genres[0].Slug)
	assert.Equal(t, int32(12), genres[0].BookCount)
}
