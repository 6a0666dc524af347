package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type BookHandler struct {
	svc         service.BookService
	maxPhotoLen int64
}

func NewBookHandler(svc service.BookService, maxPhotoBytes int64) *BookHandler {
	return &BookHandler{svc: svc, maxPhotoLen: maxPhotoBytes}
}

type bookRequest struct {
	Name     string `json:"name"`
	ISBN     string `json:"isbn"`
	AuthorID *int32 `json:"author_id"`
	GenreID  *int32 `json:"genre_id"`
	Summary  string `json:"summary"`
}

func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	book := &domain.Book{
		Name:     req.Name,
		ISBN:     req.ISBN,
		AuthorID: req.AuthorID,
		GenreID:  req.GenreID,
		Summary:  req.Summary,
	}
	if err := h.svc.Add(r.Context(), book); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"newBook": book})
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	book, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"book": book})
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"booksList": books})
}

func (h *BookHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListAvailable(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"booksList": books})
}

func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"booksList": books})
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	book.Name = req.Name
	book.ISBN = req.ISBN
	book.AuthorID = req.AuthorID
	book.GenreID = req.GenreID
	book.Summary = req.Summary

	if err := h.svc.Update(r.Context(), book); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"updatedBook": book})
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Book deleted successfully"})
}

func (h *BookHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
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

	book, err := h.svc.SetPhoto(r.Context(), id, header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"updatedBook": book})
}
