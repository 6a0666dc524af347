package repository

import (
	"context"
	"time"

	"library-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	GetByID(ctx context.Context, id int32) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id int32) error
}

type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	GetByID(ctx context.Context, id int32) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, id int32) error

	// ListPopular ranks genres by how many books they hold, most first.
	// Genres without books are omitted.
	ListPopular(ctx context.Context, limit int) ([]domain.GenreWithCount, error)
	// Search matches genres whose name or description contains query,
	// case-insensitively, sorted by name.
	Search(ctx context.Context, query string) ([]domain.GenreWithCount, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context) ([]domain.BookDetail, error)
	ListAvailable(ctx context.Context) ([]domain.BookDetail, error)
	ListByGenre(ctx context.Context, genreID int32) ([]domain.BookDetail, error)
	// Search matches books whose name, ISBN, summary or author name
	// contains query, case-insensitively, sorted by name.
	Search(ctx context.Context, query string) ([]domain.BookDetail, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int32) error
}

// BorrowalRepository persists loans. Open, Return and Delete are atomic
// units: the borrowal write and the book availability write commit together
// or not at all.
type BorrowalRepository interface {
	// Open inserts b and claims its book's availability in one transaction.
	// asOf drives the overdue eligibility check on the member. Fails with
	// ErrBookNotFound, ErrBookUnavailable, ErrMemberNotFound or
	// ErrMemberOverdue; storage errors surface as ErrTransactionFailed.
	Open(ctx context.Context, b *domain.Borrowal, asOf time.Time) error

	GetByID(ctx context.Context, id int32) (*domain.Borrowal, error)
	GetDetailByID(ctx context.Context, id int32) (*domain.BorrowalDetail, error)

	// Update writes the mutable fields of b, stamping updated_on with asOf.
	// It does not touch book availability.
	Update(ctx context.Context, b *domain.Borrowal, asOf time.Time) error

	// MarkOverdue flips a still-open loan to OVERDUE with the given fine.
	// The write is guarded on status = 'BORROWED'; a row already moved on
	// (returned or reconciled concurrently) is left alone and no error is
	// reported.
	MarkOverdue(ctx context.Context, id, fineCents int32, asOf time.Time) error

	// Return marks b returned and releases its book in one transaction.
	// Fails with ErrAlreadyReturned if the stored row is already terminal.
	Return(ctx context.Context, b *domain.Borrowal) error

	// Delete removes the borrowal, restoring book availability first when
	// the loan was still open. Returns the deleted record.
	Delete(ctx context.Context, id int32, asOf time.Time) (*domain.Borrowal, error)

	ListAll(ctx context.Context) ([]domain.BorrowalDetail, error)
	ListByMember(ctx context.Context, memberID int32) ([]domain.BorrowalDetail, error)
	// ListOverdue evaluates the canonical overdue predicate as of asOf, so
	// rows whose stored label is stale are still included.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.BorrowalDetail, error)
	Stats(ctx context.Context, recentLimit int) (*domain.BorrowalStats, error)

	// ReconcileOverdue bulk-flips BORROWED rows past due to OVERDUE and
	// refreshes their fines. Returns the affected borrowal ids.
	ReconcileOverdue(ctx context.Context, asOf time.Time, ratePerDayCents int32) ([]int32, error)
}
