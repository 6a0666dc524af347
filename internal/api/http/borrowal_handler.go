package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type BorrowalHandler struct {
	svc service.BorrowalService
}

func NewBorrowalHandler(svc service.BorrowalService) *BorrowalHandler {
	return &BorrowalHandler{svc: svc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return int32(id), nil
}

type openBorrowalRequest struct {
	BookID   int32  `json:"book_id"`
	MemberID int32  `json:"member_id"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

func (h *BorrowalHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openBorrowalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	borrowal, err := h.svc.Open(r.Context(), req.BookID, req.MemberID, req.Status, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"newBorrowal": borrowal})
}

func (h *BorrowalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	borrowal, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"borrowal": borrowal})
}

func (h *BorrowalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"borrowalsList": list})
}

type updateBorrowalRequest struct {
	BookID       *int32     `json:"book_id"`
	MemberID     *int32     `json:"member_id"`
	BorrowedDate *time.Time `json:"borrowed_date"`
	DueDate      *time.Time `json:"due_date"`
	Status       *string    `json:"status"`
	Notes        *string    `json:"notes"`
}

func (h *BorrowalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateBorrowalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	borrowal, err := h.svc.Update(r.Context(), id, service.BorrowalUpdate{
		BookID:       req.BookID,
		MemberID:     req.MemberID,
		BorrowedDate: req.BorrowedDate,
		DueDate:      req.DueDate,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"updatedBorrowal": borrowal})
}

func (h *BorrowalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	borrowal, fine, err := h.svc.Return(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Book returned successfully"
	if fine > 0 {
		message = fmt.Sprintf("Book returned with fine: $%.2f", float64(fine)/100)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":          message,
		"returnedBorrowal": borrowal,
		"fine_cents":       fine,
	})
}

func (h *BorrowalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	borrowal, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Borrowal deleted successfully",
		"deletedBorrowal": borrowal,
	})
}

func (h *BorrowalHandler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := pathID(r, "memberId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.svc.ListByMember(r.Context(), memberID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"borrowalsList": list})
}

func (h *BorrowalHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListOverdue(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"overdueBorrowalsList": list})
}

func (h *BorrowalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}
