package service

import (
	"context"
	"io"
	"time"

	"library-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, isAdmin bool) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, session token
	GetUser(ctx context.Context, userID int32) (*domain.User, error)
}

// BorrowalUpdate carries the optional fields of a borrowal update request.
// Nil means "leave unchanged".
type BorrowalUpdate struct {
	BookID       *int32
	MemberID     *int32
	BorrowedDate *time.Time
	DueDate      *time.Time
	Status       *string
	Notes        *string
}

type BorrowalService interface {
	Open(ctx context.Context, bookID, memberID int32, status, notes string) (*domain.BorrowalDetail, error)
	Get(ctx context.Context, id int32) (*domain.BorrowalDetail, error)
	Update(ctx context.Context, id int32, upd BorrowalUpdate) (*domain.BorrowalDetail, error)
	Return(ctx context.Context, id int32) (*domain.BorrowalDetail, int32, error) // borrowal, fine charged
	Delete(ctx context.Context, id int32) (*domain.Borrowal, error)
	ListAll(ctx context.Context) ([]domain.BorrowalDetail, error)
	ListByMember(ctx context.Context, memberID int32) ([]domain.BorrowalDetail, error)
	ListOverdue(ctx context.Context) ([]domain.BorrowalDetail, error)
	Stats(ctx context.Context) (*domain.BorrowalStats, error)
}

type BookService interface {
	Add(ctx context.Context, book *domain.Book) error
	Get(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context) ([]domain.BookDetail, error)
	ListAvailable(ctx context.Context) ([]domain.BookDetail, error)
	Search(ctx context.Context, query string) ([]domain.BookDetail, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
	SetPhoto(ctx context.Context, id int32, filename string, data io.Reader) (*domain.Book, error)
}

type AuthorService interface {
	Add(ctx context.Context, author *domain.Author) error
	Get(ctx context.Context, id int32) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id int32) error
}

type GenreService interface {
	Add(ctx context.Context, genre *domain.Genre) error
	Get(ctx context.Context, id int32) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, id int32) error
	// ListBooks returns the genre and its books, name order.
	ListBooks(ctx context.Context, id int32) (*domain.Genre, []domain.BookDetail, error)
	ListPopular(ctx context.Context, limit int) ([]domain.GenreWithCount, error)
	Search(ctx context.Context, query string) ([]domain.GenreWithCount, error)
}

type MemberService interface {
	Add(ctx context.Context, member *domain.Member) error
	Get(ctx context.Context, id int32) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int32) error
	SetPhoto(ctx context.Context, id int32, filename string, data io.Reader) (*domain.Member, error)
}

type EmailService interface {
	SendOverdueNotice(ctx context.Context, toEmail, toName, bookName string, dueDate time.Time, fineCents int32) error
}
