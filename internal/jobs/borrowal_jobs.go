package jobs

import (
	"context"

	"library-backend/internal/logger"
)

// ReconcileOverdueBorrowals bulk-transitions BORROWED loans past their due
// date to OVERDUE and refreshes their fines. The lazy per-request evaluation
// stays authoritative; this pass just keeps stored labels fresh for anything
// nobody has touched.
func (jr *JobRunner) ReconcileOverdueBorrowals() {
	jr.runWithRecovery("ReconcileOverdueBorrowals", func() {
		ctx := context.Background()

		ids, err := jr.store.ReconcileOverdue(ctx, jr.clk.Now(), jr.config.Loan.FineRatePerDayCents)
		if err != nil {
			logger.Error("Failed to reconcile overdue borrowals", "error", err)
			return
		}

		logger.Info("Marked borrowals as overdue", "count", len(ids))
		for _, id := range ids {
			logger.Debug("Marked borrowal as overdue", "borrowal_id", id)
		}
	})
}

// SendOverdueNotices emails every member with an overdue loan and an email
// address on file.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()

		overdue, err := jr.store.ListOverdue(ctx, jr.clk.Now())
		if err != nil {
			logger.Error("Failed to list overdue borrowals", "error", err)
			return
		}

		sent := 0
		for _, b := range overdue {
			if b.MemberEmail == "" {
				continue
			}
			if err := jr.email.SendOverdueNotice(ctx, b.MemberEmail, b.MemberName, b.BookName, b.DueDate, b.FineCents); err != nil {
				logger.Error("Failed to send overdue notice", "borrowal_id", b.ID, "member_id", b.MemberID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue notices", "sent", sent, "overdue", len(overdue))
	})
}
