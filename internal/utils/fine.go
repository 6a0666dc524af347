package utils

import (
	"time"

	"library-backend/internal/domain"
)

// DefaultFineRateCents is charged per overdue day when no rate is configured.
const DefaultFineRateCents int32 = 100

// CalculateFine returns the fine in cents for a loan due at due and evaluated
// at now. A loan on or before its due date owes nothing; past it, every
// started day counts in full.
func CalculateFine(due, now time.Time, ratePerDayCents int32) int32 {
	if !now.After(due) {
		return 0
	}
	overdue := now.Sub(due)
	days := int32(overdue / (24 * time.Hour))
	if overdue%(24*time.Hour) != 0 {
		days++
	}
	return days * ratePerDayCents
}

// IsOverdue is the canonical overdue predicate. The stored status label is
// only refreshed when something touches the record, so freshness checks must
// go through here rather than trusting the label.
func IsOverdue(status domain.BorrowalStatus, due, now time.Time) bool {
	if status == domain.BorrowalStatusReturned {
		return false
	}
	return now.After(due)
}
