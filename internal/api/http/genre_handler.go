package http

import (
	"net/http"
	"strconv"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

type genreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *GenreHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	genre := &domain.Genre{Name: req.Name, Description: req.Description}
	if err := h.svc.Add(r.Context(), genre); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"newGenre": genre})
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	genre, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"genre": genre})
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"genresList": genres})
}

func (h *GenreHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	genre, books, err := h.svc.ListBooks(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"genre": genre, "books": books})
}

func (h *GenreHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, domain.ErrInvalidInput)
			return
		}
		limit = n
	}
	genres, err := h.svc.ListPopular(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"popularGenres": genres})
}

func (h *GenreHandler) Search(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"genresList": genres})
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req genreRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	genre, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	genre.Name = req.Name
	genre.Description = req.Description
	if err := h.svc.Update(r.Context(), genre); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"updatedGenre": genre})
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Genre deleted successfully"})
}
