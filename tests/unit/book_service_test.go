package unit

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

func TestBookService_Add(t *testing.T) {
	ctx := context.Background()
	bookRepo := new(MockBookRepo)
	store := new(MockStorage)
	svc := service.NewBookService(bookRepo, store)

	t.Run("Success Marks Available", func(t *testing.T) {
		bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)

		b := &domain.Book{Name: "Dune", ISBN: "9780441013593"}
		err := svc.Add(ctx, b)
		assert.NoError(t, err)
		assert.True(t, b.IsAvailable)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		err := svc.Add(ctx, &domain.Book{Name: "Dune"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBookService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		store := new(MockStorage)
		svc := service.NewBookService(bookRepo, store)

		bookRepo.On("Search", ctx, "dune").Return([]domain.BookDetail{
			{Book: domain.Book{ID: 1, Name: "Dune"}, AuthorName: "Frank Herbert"},
		}, nil)

		books, err := svc.Search(ctx, "dune")
		assert.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, "Frank Herbert", books[0].AuthorName)
	})

	t.Run("Blank Query Rejected", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		store := new(MockStorage)
		svc := service.NewBookService(bookRepo, store)

		_, err := svc.Search(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		bookRepo.AssertNotCalled(t, "Search")
	})
}

func TestBookService_SetPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Old Photo", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		store := new(MockStorage)
		svc := service.NewBookService(bookRepo, store)

		bookRepo.On("GetByID", ctx, int32(1)).Return(&domain.Book{
			ID: 1, Name: "Dune", ISBN: "x", PhotoKey: "book_covers/old.jpg",
		}, nil)
		store.On("Save", ctx, "book_covers", "cover.jpg", mock.Anything).
			Return("book_covers/new.jpg", "http://localhost/api/assets/book_covers/new.jpg", nil)
		bookRepo.On("Update", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)
		store.On("Delete", ctx, "book_covers/old.jpg").Return(nil)

		b, err := svc.SetPhoto(ctx, 1, "cover.jpg", strings.NewReader("img"))
		assert.NoError(t, err)
		assert.Equal(t, "book_covers/new.jpg", b.PhotoKey)
		assert.Equal(t, "http://localhost/api/assets/book_covers/new.jpg", b.PhotoURL)
		store.AssertCalled(t, "Delete", ctx, "book_covers/old.jpg")
	})

	t.Run("Cleans Up On Update Failure", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		store := new(MockStorage)
		svc := service.NewBookService(bookRepo, store)

		bookRepo.On("GetByID", ctx, int32(1)).Return(&domain.Book{ID: 1, Name: "Dune", ISBN: "x"}, nil)
		store.On("Save", ctx, "book_covers", "cover.jpg", mock.Anything).
			Return("book_covers/new.jpg", "http://localhost/api/assets/book_covers/new.jpg", nil)
		bookRepo.On("Update", ctx, mock.AnythingOfType("*domain.Book")).Return(domain.ErrBookNotFound)
		store.On("Delete", ctx, "book_covers/new.jpg").Return(nil)

		_, err := svc.SetPhoto(ctx, 1, "cover.jpg", strings.NewReader("img"))
		assert.ErrorIs(t, err, domain.ErrBookNotFound)
		store.AssertCalled(t, "Delete", ctx, "book_covers/new.jpg")
	})
}

func TestBookService_Delete(t *testing.T) {
	ctx := context.Background()
	bookRepo := new(MockBookRepo)
	store := new(MockStorage)
	svc := service.NewBookService(bookRepo, store)

	bookRepo.On("GetByID", ctx, int32(1)).Return(&domain.Book{ID: 1, PhotoKey: "book_covers/a.jpg"}, nil)
	bookRepo.On("Delete", ctx, int32(1)).Return(nil)
	store.On("Delete", ctx, "book_covers/a.jpg").Return(nil)

	err := svc.Delete(ctx, 1)
	assert.NoError(t, err)
	store.AssertCalled(t, "Delete", ctx, "book_covers/a.jpg")
}
