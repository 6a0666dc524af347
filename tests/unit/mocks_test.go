package unit

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"library-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockBorrowalRepo
type MockBorrowalRepo struct {
	mock.Mock
}

func (m *MockBorrowalRepo) Open(ctx context.Context, b *domain.Borrowal, asOf time.Time) error {
	args := m.Called(ctx, b, asOf)
	return args.Error(0)
}
func (m *MockBorrowalRepo) GetByID(ctx context.Context, id int32) (*domain.Borrowal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowal), args.Error(1)
}
func (m *MockBorrowalRepo) GetDetailByID(ctx context.Context, id int32) (*domain.BorrowalDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalRepo) Update(ctx context.Context, b *domain.Borrowal, asOf time.Time) error {
	args := m.Called(ctx, b, asOf)
	return args.Error(0)
}
func (m *MockBorrowalRepo) MarkOverdue(ctx context.Context, id, fineCents int32, asOf time.Time) error {
	args := m.Called(ctx, id, fineCents, asOf)
	return args.Error(0)
}
func (m *MockBorrowalRepo) Return(ctx context.Context, b *domain.Borrowal) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowalRepo) Delete(ctx context.Context, id int32, asOf time.Time) (*domain.Borrowal, error) {
	args := m.Called(ctx, id, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowal), args.Error(1)
}
func (m *MockBorrowalRepo) ListAll(ctx context.Context) ([]domain.BorrowalDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalRepo) ListByMember(ctx context.Context, memberID int32) ([]domain.BorrowalDetail, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.BorrowalDetail, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalRepo) Stats(ctx context.Context, recentLimit int) (*domain.BorrowalStats, error) {
	args := m.Called(ctx, recentLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowalStats), args.Error(1)
}
func (m *MockBorrowalRepo) ReconcileOverdue(ctx context.Context, asOf time.Time, ratePerDayCents int32) ([]int32, error) {
	args := m.Called(ctx, asOf, ratePerDayCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context) ([]domain.BookDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookRepo) ListAvailable(ctx context.Context) ([]domain.BookDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookRepo) ListByGenre(ctx context.Context, genreID int32) ([]domain.BookDetail, error) {
	args := m.Called(ctx, genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookRepo) Search(ctx context.Context, query string) ([]domain.BookDetail, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGenreRepo
type MockGenreRepo struct {
	mock.Mock
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}
func (m *MockGenreRepo) GetByID(ctx context.Context, id int32) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}
func (m *MockGenreRepo) List(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}
func (m *MockGenreRepo) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}
func (m *MockGenreRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGenreRepo) ListPopular(ctx context.Context, limit int) ([]domain.GenreWithCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenreWithCount), args.Error(1)
}
func (m *MockGenreRepo) Search(ctx context.Context, query string) ([]domain.GenreWithCount, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenreWithCount), args.Error(1)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, folder, filename string, data io.Reader) (string, string, error) {
	args := m.Called(ctx, folder, filename, data)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
