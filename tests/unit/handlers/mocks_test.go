package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

// MockBorrowalService
type MockBorrowalService struct {
	mock.Mock
}

func (m *MockBorrowalService) Open(ctx context.Context, bookID, memberID int32, status, notes string) (*domain.BorrowalDetail, error) {
	args := m.Called(ctx, bookID, memberID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalService) Get(ctx context.Context, id int32) (*domain.BorrowalDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalService) Update(ctx context.Context, id int32, upd service.BorrowalUpdate) (*domain.BorrowalDetail, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalService) Return(ctx context.Context, id int32) (*domain.BorrowalDetail, int32, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).(*domain.BorrowalDetail), args.Get(1).(int32), args.Error(2)
}
func (m *MockBorrowalService) Delete(ctx context.Context, id int32) (*domain.Borrowal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowal), args.Error(1)
}
func (m *MockBorrowalService) ListAll(ctx context.Context) ([]domain.BorrowalDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalService) ListByMember(ctx context.Context, memberID int32) ([]domain.BorrowalDetail, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalService) ListOverdue(ctx context.Context) ([]domain.BorrowalDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowalDetail), args.Error(1)
}
func (m *MockBorrowalService) Stats(ctx context.Context) (*domain.BorrowalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BorrowalStats), args.Error(1)
}

// MockBookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Add(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookService) Get(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) List(ctx context.Context) ([]domain.BookDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookService) ListAvailable(ctx context.Context) ([]domain.BookDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookService) Search(ctx context.Context, query string) ([]domain.BookDetail, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookDetail), args.Error(1)
}
func (m *MockBookService) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookService) SetPhoto(ctx context.Context, id int32, filename string, data io.Reader) (*domain.Book, error) {
	args := m.Called(ctx, id, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

// MockGenreService
type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) Add(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}
func (m *MockGenreService) Get(ctx context.Context, id int32) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}
func (m *MockGenreService) List(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}
func (m *MockGenreService) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}
func (m *MockGenreService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGenreService) ListBooks(ctx context.Context, id int32) (*domain.Genre, []domain.BookDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Genre), args.Get(1).([]domain.BookDetail), args.Error(2)
}
func (m *MockGenreService) ListPopular(ctx context.Context, limit int) ([]domain.GenreWithCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenreWithCount), args.Error(1)
}
func (m *MockGenreService) Search(ctx context.Context, query string) ([]domain.GenreWithCount, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenreWithCount), args.Error(1)
}
