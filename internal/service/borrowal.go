package service

import (
	"context"

	"library-backend/internal/clock"
	"library-backend/internal/domain"
	"library-backend/internal/repository"
	"library-backend/internal/utils"
)

// BorrowalConfig carries the lifecycle knobs for the loan state machine.
type BorrowalConfig struct {
	PeriodDays          int
	FineRatePerDayCents int32
	StatsRecentLimit    int
}

type borrowalService struct {
	repo repository.BorrowalRepository
	clk  clock.Clock
	cfg  BorrowalConfig
}

func NewBorrowalService(repo repository.BorrowalRepository, clk clock.Clock, cfg BorrowalConfig) BorrowalService {
	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = 14
	}
	if cfg.FineRatePerDayCents <= 0 {
		cfg.FineRatePerDayCents = utils.DefaultFineRateCents
	}
	if cfg.StatsRecentLimit <= 0 {
		cfg.StatsRecentLimit = 5
	}
	return &borrowalService{repo: repo, clk: clk, cfg: cfg}
}

// Open creates a new loan. Preconditions (book exists and is available,
// member exists, member has nothing overdue) are enforced inside the
// repository's transaction so the borrowal insert and the availability flip
// land together or not at all.
func (s *borrowalService) Open(ctx context.Context, bookID, memberID int32, status, notes string) (*domain.BorrowalDetail, error) {
	if bookID <= 0 || memberID <= 0 {
		return nil, domain.ErrInvalidID
	}

	st := domain.BorrowalStatusBorrowed
	if status != "" {
		st = domain.BorrowalStatus(status)
		if !domain.ValidBorrowalStatus(st) {
			return nil, domain.ErrInvalidStatus
		}
	}

	now := s.clk.Now()
	b := &domain.Borrowal{
		BookID:       bookID,
		MemberID:     memberID,
		BorrowedDate: now,
		DueDate:      now.AddDate(0, 0, s.cfg.PeriodDays),
		Status:       st,
		Notes:        notes,
	}

	if err := s.repo.Open(ctx, b, now); err != nil {
		return nil, err
	}
	return s.repo.GetDetailByID(ctx, b.ID)
}

func (s *borrowalService) Get(ctx context.Context, id int32) (*domain.BorrowalDetail, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	d, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.refreshOverdue(ctx, &d.Borrowal); err != nil {
		return nil, err
	}
	return d, nil
}

// Update edits the mutable fields of a loan. A blank status in the request is
// ignored rather than stored, and the book/member references are immutable
// once the loan exists: moving a loan to another book would desynchronize the
// availability ledger.
func (s *borrowalService) Update(ctx context.Context, id int32, upd BorrowalUpdate) (*domain.BorrowalDetail, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.BookID != nil && *upd.BookID != b.BookID {
		return nil, domain.ErrReferenceChange
	}
	if upd.MemberID != nil && *upd.MemberID != b.MemberID {
		return nil, domain.ErrReferenceChange
	}

	if upd.BorrowedDate != nil {
		b.BorrowedDate = *upd.BorrowedDate
	}
	if upd.DueDate != nil {
		b.DueDate = *upd.DueDate
	}
	if upd.Status != nil && *upd.Status != "" {
		st := domain.BorrowalStatus(*upd.Status)
		if !domain.ValidBorrowalStatus(st) {
			return nil, domain.ErrInvalidStatus
		}
		b.Status = st
	}
	if upd.Notes != nil {
		b.Notes = *upd.Notes
	}

	s.applyOverdue(b)

	if err := s.repo.Update(ctx, b, s.clk.Now()); err != nil {
		return nil, err
	}
	return s.repo.GetDetailByID(ctx, id)
}

// Return closes the loan, freezing the fine computed at this moment, and
// releases the book. A loan already returned is rejected, not treated as a
// no-op.
func (s *borrowalService) Return(ctx context.Context, id int32) (*domain.BorrowalDetail, int32, error) {
	if id <= 0 {
		return nil, 0, domain.ErrInvalidID
	}
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if b.Status == domain.BorrowalStatusReturned {
		return nil, 0, domain.ErrAlreadyReturned
	}

	now := s.clk.Now()
	fine := utils.CalculateFine(b.DueDate, now, s.cfg.FineRatePerDayCents)

	b.Status = domain.BorrowalStatusReturned
	b.ReturnedDate = &now
	b.FineCents = fine

	if err := s.repo.Return(ctx, b); err != nil {
		return nil, 0, err
	}

	d, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return d, fine, nil
}

func (s *borrowalService) Delete(ctx context.Context, id int32) (*domain.Borrowal, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, id, s.clk.Now())
}

func (s *borrowalService) ListAll(ctx context.Context) ([]domain.BorrowalDetail, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.projectOverdue(list)
	return list, nil
}

func (s *borrowalService) ListByMember(ctx context.Context, memberID int32) ([]domain.BorrowalDetail, error) {
	if memberID <= 0 {
		return nil, domain.ErrInvalidID
	}
	list, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	s.projectOverdue(list)
	return list, nil
}

func (s *borrowalService) ListOverdue(ctx context.Context) ([]domain.BorrowalDetail, error) {
	list, err := s.repo.ListOverdue(ctx, s.clk.Now())
	if err != nil {
		return nil, err
	}
	s.projectOverdue(list)
	return list, nil
}

func (s *borrowalService) Stats(ctx context.Context) (*domain.BorrowalStats, error) {
	return s.repo.Stats(ctx, s.cfg.StatsRecentLimit)
}

// applyOverdue runs the lazy overdue transition on b in memory. Callers
// persist the record afterwards.
func (s *borrowalService) applyOverdue(b *domain.Borrowal) bool {
	if b.Status != domain.BorrowalStatusBorrowed {
		return false
	}
	now := s.clk.Now()
	if !utils.IsOverdue(b.Status, b.DueDate, now) {
		return false
	}
	b.Status = domain.BorrowalStatusOverdue
	b.FineCents = utils.CalculateFine(b.DueDate, now, s.cfg.FineRatePerDayCents)
	return true
}

// refreshOverdue persists the lazy transition when a read touches a loan that
// has gone overdue since it was last written. The guarded write only lands on
// a row still BORROWED, so a return committing between our read and this write
// keeps its returned_date.
func (s *borrowalService) refreshOverdue(ctx context.Context, b *domain.Borrowal) error {
	if !s.applyOverdue(b) {
		return nil
	}
	return s.repo.MarkOverdue(ctx, b.ID, b.FineCents, s.clk.Now())
}

// projectOverdue re-evaluates the canonical predicate over read results so
// listings never present a stale BORROWED label for a loan already past due.
// The stored rows are left alone; the reconciliation job freshens those.
func (s *borrowalService) projectOverdue(list []domain.BorrowalDetail) {
	now := s.clk.Now()
	for i := range list {
		b := &list[i].Borrowal
		if b.Status == domain.BorrowalStatusBorrowed && utils.IsOverdue(b.Status, b.DueDate, now) {
			b.Status = domain.BorrowalStatusOverdue
			b.FineCents = utils.CalculateFine(b.DueDate, now, s.cfg.FineRatePerDayCents)
		}
	}
}
