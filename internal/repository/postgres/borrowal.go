package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type borrowalRepository struct {
	db *sql.DB
}

func NewBorrowalRepository(db *sql.DB) repository.BorrowalRepository {
	return &borrowalRepository{db: db}
}

const borrowalColumns = `id, book_id, member_id, borrowed_date, due_date, returned_date, status, fine_cents, COALESCE(notes, ''), created_on, updated_on`

const borrowalDetailQuery = `SELECT bw.id, bw.book_id, bw.member_id, bw.borrowed_date, bw.due_date, bw.returned_date, bw.status, bw.fine_cents, COALESCE(bw.notes, ''), bw.created_on, bw.updated_on,
	m.name, COALESCE(m.email, ''), m.phone, COALESCE(m.photo_url, ''),
	b.name, b.isbn, COALESCE(b.photo_url, ''), COALESCE(a.name, '')
	FROM borrowals bw
	JOIN members m ON m.id = bw.member_id
	JOIN books b ON b.id = bw.book_id
	LEFT JOIN authors a ON a.id = b.author_id`

// memberOverduePredicate matches loans that block new borrowing for a member:
// either already labelled overdue or still open past the due date. The label
// alone is not trusted because it is only refreshed lazily.
const memberOverduePredicate = `member_id = $1 AND (status = 'OVERDUE' OR (status = 'BORROWED' AND due_date < $2))`

func txFail(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
}

// Open creates the borrowal and claims the book in a single transaction.
// The book row is locked for the duration so concurrent opens on the same
// book serialize: exactly one sees is_available = true.
func (r *borrowalRepository) Open(ctx context.Context, b *domain.Borrowal, asOf time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return txFail(err)
	}
	defer tx.Rollback()

	var available bool
	err = tx.QueryRowContext(ctx, `SELECT is_available FROM books WHERE id = $1 FOR UPDATE`, b.BookID).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBookNotFound
	}
	if err != nil {
		return txFail(err)
	}
	if !available {
		return domain.ErrBookUnavailable
	}

	var memberExists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`, b.MemberID).Scan(&memberExists); err != nil {
		return txFail(err)
	}
	if !memberExists {
		return domain.ErrMemberNotFound
	}

	var overdueCount int32
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM borrowals WHERE `+memberOverduePredicate, b.MemberID, asOf).Scan(&overdueCount); err != nil {
		return txFail(err)
	}
	if overdueCount > 0 {
		return domain.ErrMemberOverdue
	}

	insert := `INSERT INTO borrowals (book_id, member_id, borrowed_date, due_date, status, fine_cents, notes, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert, b.BookID, b.MemberID, b.BorrowedDate, b.DueDate, b.Status, b.FineCents, b.Notes, asOf, asOf).Scan(&b.ID); err != nil {
		return txFail(err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE books SET is_available = false, updated_on = $1 WHERE id = $2`, asOf, b.BookID); err != nil {
		return txFail(err)
	}

	if err := tx.Commit(); err != nil {
		return txFail(err)
	}
	return nil
}

func (r *borrowalRepository) GetByID(ctx context.Context, id int32) (*domain.Borrowal, error) {
	b := &domain.Borrowal{}
	query := `SELECT ` + borrowalColumns + ` FROM borrowals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BookID, &b.MemberID, &b.BorrowedDate, &b.DueDate, &b.ReturnedDate, &b.Status, &b.FineCents, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBorrowalNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *borrowalRepository) GetDetailByID(ctx context.Context, id int32) (*domain.BorrowalDetail, error) {
	row := r.db.QueryRowContext(ctx, borrowalDetailQuery+` WHERE bw.id = $1`, id)
	d, err := scanBorrowalDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBorrowalNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *borrowalRepository) Update(ctx context.Context, b *domain.Borrowal, asOf time.Time) error {
	query := `UPDATE borrowals SET borrowed_date=$1, due_date=$2, returned_date=$3, status=$4, fine_cents=$5, notes=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, b.BorrowedDate, b.DueDate, b.ReturnedDate, b.Status, b.FineCents, b.Notes, asOf, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBorrowalNotFound
	}
	return nil
}

// MarkOverdue persists the lazy BORROWED -> OVERDUE transition. The status
// guard keeps the write from landing on a loan a concurrent return (or the
// reconciliation job) already moved on: a row that no longer matches is left
// untouched and the zero-row result is not an error.
func (r *borrowalRepository) MarkOverdue(ctx context.Context, id, fineCents int32, asOf time.Time) error {
	query := `UPDATE borrowals SET status = 'OVERDUE', fine_cents = $1, updated_on = $2 WHERE id = $3 AND status = 'BORROWED'`
	_, err := r.db.ExecContext(ctx, query, fineCents, asOf, id)
	return err
}

// Return closes the loan and releases the book in a single transaction. The
// status guard on the UPDATE makes a second return lose even when two callers
// race past the service-level check.
func (r *borrowalRepository) Return(ctx context.Context, b *domain.Borrowal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return txFail(err)
	}
	defer tx.Rollback()

	update := `UPDATE borrowals SET status=$1, returned_date=$2, fine_cents=$3, updated_on=$4 WHERE id=$5 AND status <> 'RETURNED'`
	res, err := tx.ExecContext(ctx, update, domain.BorrowalStatusReturned, b.ReturnedDate, b.FineCents, b.ReturnedDate, b.ID)
	if err != nil {
		return txFail(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return txFail(err)
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM borrowals WHERE id = $1)`, b.ID).Scan(&exists); err != nil {
			return txFail(err)
		}
		if !exists {
			return domain.ErrBorrowalNotFound
		}
		return domain.ErrAlreadyReturned
	}

	if _, err := tx.ExecContext(ctx, `UPDATE books SET is_available = true, updated_on = $1 WHERE id = $2`, b.ReturnedDate, b.BookID); err != nil {
		return txFail(err)
	}

	if err := tx.Commit(); err != nil {
		return txFail(err)
	}
	return nil
}

// Delete removes the loan, releasing its book when the loan never reached the
// returned state. The availability restore and the delete commit together.
func (r *borrowalRepository) Delete(ctx context.Context, id int32, asOf time.Time) (*domain.Borrowal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, txFail(err)
	}
	defer tx.Rollback()

	b := &domain.Borrowal{}
	query := `SELECT ` + borrowalColumns + ` FROM borrowals WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BookID, &b.MemberID, &b.BorrowedDate, &b.DueDate, &b.ReturnedDate, &b.Status, &b.FineCents, &b.Notes, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBorrowalNotFound
	}
	if err != nil {
		return nil, txFail(err)
	}

	if b.Status != domain.BorrowalStatusReturned {
		if _, err := tx.ExecContext(ctx, `UPDATE books SET is_available = true, updated_on = $1 WHERE id = $2`, asOf, b.BookID); err != nil {
			return nil, txFail(err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM borrowals WHERE id = $1`, id); err != nil {
		return nil, txFail(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, txFail(err)
	}
	return b, nil
}

func (r *borrowalRepository) ListAll(ctx context.Context) ([]domain.BorrowalDetail, error) {
	return r.listDetails(ctx, borrowalDetailQuery+` ORDER BY bw.borrowed_date DESC`)
}

func (r *borrowalRepository) ListByMember(ctx context.Context, memberID int32) ([]domain.BorrowalDetail, error) {
	return r.listDetails(ctx, borrowalDetailQuery+` WHERE bw.member_id = $1 ORDER BY bw.borrowed_date DESC`, memberID)
}

// ListOverdue applies the canonical predicate rather than trusting the stored
// label, so loans that went overdue without being touched still show up.
func (r *borrowalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.BorrowalDetail, error) {
	query := borrowalDetailQuery + ` WHERE (bw.status = 'OVERDUE' OR (bw.status = 'BORROWED' AND bw.due_date < $1)) ORDER BY bw.due_date ASC`
	return r.listDetails(ctx, query, asOf)
}

func (r *borrowalRepository) listDetails(ctx context.Context, query string, args ...interface{}) ([]domain.BorrowalDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.BorrowalDetail
	for rows.Next() {
		d, err := scanBorrowalDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, rows.Err()
}

func (r *borrowalRepository) Stats(ctx context.Context, recentLimit int) (*domain.BorrowalStats, error) {
	stats := &domain.BorrowalStats{}

	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM borrowals GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		stats.StatusCounts = append(stats.StatusCounts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(fine_cents), 0) FROM borrowals`).Scan(&stats.TotalFineCents); err != nil {
		return nil, err
	}

	recent, err := r.listDetails(ctx, borrowalDetailQuery+` ORDER BY bw.borrowed_date DESC LIMIT $1`, recentLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentBorrowals = recent

	return stats, nil
}

// ReconcileOverdue refreshes stale labels in bulk. Fines are recomputed with
// the same started-day rounding as the fine calculator.
func (r *borrowalRepository) ReconcileOverdue(ctx context.Context, asOf time.Time, ratePerDayCents int32) ([]int32, error) {
	query := `UPDATE borrowals
		SET status = 'OVERDUE',
		    fine_cents = CEIL(EXTRACT(EPOCH FROM ($1::timestamptz - due_date)) / 86400)::int * $2,
		    updated_on = $1
		WHERE status = 'BORROWED' AND due_date < $1
		RETURNING id`
	rows, err := r.db.QueryContext(ctx, query, asOf, ratePerDayCents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBorrowalDetail(row rowScanner) (*domain.BorrowalDetail, error) {
	d := &domain.BorrowalDetail{}
	err := row.Scan(&d.ID, &d.BookID, &d.MemberID, &d.BorrowedDate, &d.DueDate, &d.ReturnedDate, &d.Status, &d.FineCents, &d.Notes, &d.CreatedOn, &d.UpdatedOn,
		&d.MemberName, &d.MemberEmail, &d.MemberPhone, &d.MemberPhotoURL,
		&d.BookName, &d.BookISBN, &d.BookPhotoURL, &d.AuthorName)
	if err != nil {
		return nil, err
	}
	return d, nil
}
