package postgres

import (
	"database/sql"

	"library-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AuthorRepository
	repository.GenreRepository
	repository.BookRepository
	repository.MemberRepository
	repository.BorrowalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		AuthorRepository:   NewAuthorRepository(db),
		GenreRepository:    NewGenreRepository(db),
		BookRepository:     NewBookRepository(db),
		MemberRepository:   NewMemberRepository(db),
		BorrowalRepository: NewBorrowalRepository(db),
	}
}
