package service

import (
	"context"
	"io"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/storage"
)

type bookService struct {
	bookRepo repository.BookRepository
	store    storage.Storage
}

func NewBookService(bookRepo repository.BookRepository, store storage.Storage) BookService {
	return &bookService{bookRepo: bookRepo, store: store}
}

func (s *bookService) Add(ctx context.Context, b *domain.Book) error {
	if b.Name == "" || b.ISBN == "" {
		return domain.ErrInvalidInput
	}
	b.IsAvailable = true
	return s.bookRepo.Create(ctx, b)
}

func (s *bookService) Get(ctx context.Context, id int32) (*domain.Book, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context) ([]domain.BookDetail, error) {
	return s.bookRepo.List(ctx)
}

func (s *bookService) ListAvailable(ctx context.Context) ([]domain.BookDetail, error) {
	return s.bookRepo.ListAvailable(ctx)
}

func (s *bookService) Search(ctx context.Context, query string) ([]domain.BookDetail, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.bookRepo.Search(ctx, query)
}

// Update edits catalog fields only. The availability flag is owned by the
// borrowal engine and is not writable here.
func (s *bookService) Update(ctx context.Context, b *domain.Book) error {
	if b.ID <= 0 {
		return domain.ErrInvalidID
	}
	if b.Name == "" || b.ISBN == "" {
		return domain.ErrInvalidInput
	}
	return s.bookRepo.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	b, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return err
	}
	if b.PhotoKey != "" {
		if err := s.store.Delete(ctx, b.PhotoKey); err != nil {
			logger.Warn("Failed to delete book photo", "book_id", id, "key", b.PhotoKey, "error", err)
		}
	}
	return nil
}

// SetPhoto stores a new cover image and drops the previous one once the
// record points at the replacement.
func (s *bookService) SetPhoto(ctx context.Context, id int32, filename string, data io.Reader) (*domain.Book, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	b, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key, url, err := s.store.Save(ctx, "book_covers", filename, data)
	if err != nil {
		return nil, err
	}

	oldKey := b.PhotoKey
	b.PhotoURL = url
	b.PhotoKey = key
	if err := s.bookRepo.Update(ctx, b); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to clean up orphaned photo", "key", key, "error", delErr)
		}
		return nil, err
	}

	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			logger.Warn("Failed to delete replaced book photo", "key", oldKey, "error", err)
		}
	}
	return b, nil
}
