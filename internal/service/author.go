package service

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type authorService struct {
	authorRepo repository.AuthorRepository
}

func NewAuthorService(authorRepo repository.AuthorRepository) AuthorService {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) Add(ctx context.Context, a *domain.Author) error {
	if a.Name == "" {
		return domain.ErrInvalidInput
	}
	return s.authorRepo.Create(ctx, a)
}

func (s *authorService) Get(ctx context.Context, id int32) (*domain.Author, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.authorRepo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context) ([]domain.Author, error) {
	return s.authorRepo.List(ctx)
}

func (s *authorService) Update(ctx context.Context, a *domain.Author) error {
	if a.ID <= 0 {
		return domain.ErrInvalidID
	}
	if a.Name == "" {
		return domain.ErrInvalidInput
	}
	return s.authorRepo.Update(ctx, a)
}

func (s *authorService) Delete(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.authorRepo.Delete(ctx, id)
}
