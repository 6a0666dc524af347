package utils

import (
	"testing"
	"time"

	"library-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateFine(t *testing.T) {
	due := date(2025, time.March, 10)

	tests := []struct {
		name string
		now  time.Time
		rate int32
		want int32
	}{
		{"before due date", date(2025, time.March, 5), 100, 0},
		{"exactly at due date", due, 100, 0},
		{"one day late", date(2025, time.March, 11), 100, 100},
		{"three days late", date(2025, time.March, 13), 100, 300},
		{"partial day rounds up", due.Add(36 * time.Hour), 100, 200},
		{"one second late counts a full day", due.Add(time.Second), 100, 100},
		{"three days late at one unit per day", date(2025, time.March, 13), 1, 3},
		{"two weeks late", date(2025, time.March, 24), 50, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateFine(due, tt.now, tt.rate)
			if got != tt.want {
				t.Errorf("CalculateFine(%v, %v, %d) = %d, want %d", due, tt.now, tt.rate, got, tt.want)
			}
			if got < 0 {
				t.Errorf("fine must never be negative, got %d", got)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	due := date(2025, time.March, 10)

	tests := []struct {
		name   string
		status domain.BorrowalStatus
		now    time.Time
		want   bool
	}{
		{"borrowed before due", domain.BorrowalStatusBorrowed, date(2025, time.March, 9), false},
		{"borrowed at due", domain.BorrowalStatusBorrowed, due, false},
		{"borrowed past due", domain.BorrowalStatusBorrowed, date(2025, time.March, 11), true},
		{"stale label past due", domain.BorrowalStatusBorrowed, date(2025, time.April, 1), true},
		{"overdue label past due", domain.BorrowalStatusOverdue, date(2025, time.March, 11), true},
		{"returned never overdue", domain.BorrowalStatusReturned, date(2025, time.April, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.status, due, tt.now); got != tt.want {
				t.Errorf("IsOverdue(%s, %v, %v) = %v, want %v", tt.status, due, tt.now, got, tt.want)
			}
		})
	}
}
