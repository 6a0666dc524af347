package service

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type genreService struct {
	genreRepo repository.GenreRepository
	bookRepo  repository.BookRepository
}

func NewGenreService(genreRepo repository.GenreRepository, bookRepo repository.BookRepository) GenreService {
	return &genreService{genreRepo: genreRepo, bookRepo: bookRepo}
}

func (s *genreService) Add(ctx context.Context, g *domain.Genre) error {
	if g.Name == "" || g.Description == "" {
		return domain.ErrInvalidInput
	}
	g.Slug = domain.Slugify(g.Name)
	return s.genreRepo.Create(ctx, g)
}

func (s *genreService) Get(ctx context.Context, id int32) (*domain.Genre, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.genreRepo.GetByID(ctx, id)
}

func (s *genreService) List(ctx context.Context) ([]domain.Genre, error) {
	return s.genreRepo.List(ctx)
}

func (s *genreService) Update(ctx context.Context, g *domain.Genre) error {
	if g.ID <= 0 {
		return domain.ErrInvalidID
	}
	if g.Name == "" {
		return domain.ErrInvalidInput
	}
	g.Slug = domain.Slugify(g.Name)
	return s.genreRepo.Update(ctx, g)
}

func (s *genreService) Delete(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.genreRepo.Delete(ctx, id)
}

// ListBooks looks the genre up first so a missing genre reads as not-found
// rather than an empty shelf.
func (s *genreService) ListBooks(ctx context.Context, id int32) (*domain.Genre, []domain.BookDetail, error) {
	if id <= 0 {
		return nil, nil, domain.ErrInvalidID
	}
	g, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	books, err := s.bookRepo.ListByGenre(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return g, books, nil
}

func (s *genreService) ListPopular(ctx context.Context, limit int) ([]domain.GenreWithCount, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.genreRepo.ListPopular(ctx, limit)
}

func (s *genreService) Search(ctx context.Context, query string) ([]domain.GenreWithCount, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.genreRepo.Search(ctx, query)
}
