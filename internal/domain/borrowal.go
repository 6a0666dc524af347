package domain

import "time"

type BorrowalStatus string

const (
	BorrowalStatusBorrowed BorrowalStatus = "BORROWED"
	BorrowalStatusOverdue  BorrowalStatus = "OVERDUE"
	BorrowalStatusReturned BorrowalStatus = "RETURNED"
)

// ValidBorrowalStatus reports whether s is one of the known loan states.
func ValidBorrowalStatus(s BorrowalStatus) bool {
	switch s {
	case BorrowalStatusBorrowed, BorrowalStatusOverdue, BorrowalStatusReturned:
		return true
	}
	return false
}

// Borrowal is a loan linking one book to one member for a bounded period.
// Status, fine and returned date are owned by the borrowal service; nothing
// else writes them.
type Borrowal struct {
	ID           int32          `json:"id"`
	BookID       int32          `json:"book_id"`
	MemberID     int32          `json:"member_id"`
	BorrowedDate time.Time      `json:"borrowed_date"`
	DueDate      time.Time      `json:"due_date"`
	ReturnedDate *time.Time     `json:"returned_date,omitempty"`
	Status       BorrowalStatus `json:"status"`
	FineCents    int32          `json:"fine_cents"`
	Notes        string         `json:"notes"`
	CreatedOn    time.Time      `json:"created_on"`
	UpdatedOn    time.Time      `json:"updated_on"`
}

// BorrowalDetail is the read-side projection of a borrowal joined with its
// member and book display fields. Write paths never touch it.
type BorrowalDetail struct {
	Borrowal
	MemberName     string `json:"member_name"`
	MemberEmail    string `json:"member_email"`
	MemberPhone    string `json:"member_phone"`
	MemberPhotoURL string `json:"member_photo_url,omitempty"`
	BookName       string `json:"book_name"`
	BookISBN       string `json:"book_isbn"`
	BookPhotoURL   string `json:"book_photo_url,omitempty"`
	AuthorName     string `json:"author_name,omitempty"`
}

// StatusCount is one bucket of the per-status breakdown.
type StatusCount struct {
	Status BorrowalStatus `json:"status"`
	Count  int32          `json:"count"`
}

// BorrowalStats is the derived, read-only statistics view.
type BorrowalStats struct {
	StatusCounts    []StatusCount    `json:"status_counts"`
	TotalFineCents  int64            `json:"total_fine_cents"`
	RecentBorrowals []BorrowalDetail `json:"recent_borrowals"`
}
