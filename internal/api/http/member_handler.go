package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type MemberHandler struct {
	svc         service.MemberService
	maxPhotoLen int64
}

func NewMemberHandler(svc service.MemberService, maxPhotoBytes int64) *MemberHandler {
	return &MemberHandler{svc: svc, maxPhotoLen: maxPhotoBytes}
}

type memberRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NIC        string `json:"nic"`
	Address    string `json:"address"`
	Occupation string `json:"occupation"`
	Status     string `json:"status"`
}

func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	member := &domain.Member{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NIC:        req.NIC,
		Address:    req.Address,
		Occupation: req.Occupation,
		Status:     req.Status,
	}
	if err := h.svc.Add(r.Context(), member); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"newMember": member})
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	member, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"member": member})
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"membersList": members})
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req memberRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	member, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	member.Name = req.Name
	member.Email = req.Email
	member.Phone = req.Phone
	member.NIC = req.NIC
	member.Address = req.Address
	member.Occupation = req.Occupation
	member.Status = req.Status

	if err := h.svc.Update(r.Context(), member); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"updatedMember": member})
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Member deleted successfully"})
}

func (h *MemberHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoLen)
	if err := r.ParseMultipartForm(h.maxPhotoLen); err != nil {
		writeError(w, r, domain.ErrInvalidInput)
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, r, domain.ErrInvalidInput)
		return
	}
	defer file.Close()

	member, err := h.svc.SetPhoto(r.Context(), id, header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"updatedMember": member})
}
