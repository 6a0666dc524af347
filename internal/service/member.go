package service

import (
	"context"
	"io"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/storage"
)

type memberService struct {
	memberRepo repository.MemberRepository
	store      storage.Storage
}

func NewMemberService(memberRepo repository.MemberRepository, store storage.Storage) MemberService {
	return &memberService{memberRepo: memberRepo, store: store}
}

func (s *memberService) Add(ctx context.Context, m *domain.Member) error {
	if m.Name == "" || m.Phone == "" || m.NIC == "" {
		return domain.ErrInvalidInput
	}
	return s.memberRepo.Create(ctx, m)
}

func (s *memberService) Get(ctx context.Context, id int32) (*domain.Member, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *memberService) Update(ctx context.Context, m *domain.Member) error {
	if m.ID <= 0 {
		return domain.ErrInvalidID
	}
	if m.Name == "" {
		return domain.ErrInvalidInput
	}
	return s.memberRepo.Update(ctx, m)
}

func (s *memberService) Delete(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	m, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return err
	}
	if m.PhotoKey != "" {
		if err := s.store.Delete(ctx, m.PhotoKey); err != nil {
			logger.Warn("Failed to delete member photo", "member_id", id, "key", m.PhotoKey, "error", err)
		}
	}
	return nil
}

func (s *memberService) SetPhoto(ctx context.Context, id int32, filename string, data io.Reader) (*domain.Member, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	m, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key, url, err := s.store.Save(ctx, "profiles", filename, data)
	if err != nil {
		return nil, err
	}

	oldKey := m.PhotoKey
	m.PhotoURL = url
	m.PhotoKey = key
	if err := s.memberRepo.Update(ctx, m); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to clean up orphaned photo", "key", key, "error", delErr)
		}
		return nil, err
	}

	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			logger.Warn("Failed to delete replaced member photo", "key", oldKey, "error", err)
		}
	}
	return m, nil
}
