package handlers

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "library-backend/internal/api/http"
	"library-backend/internal/domain"
)

func bookRouter(svc *MockBookService) *mux.Router {
	h := httpapi.NewBookHandler(svc, 1<<20)
	r := mux.NewRouter()
	r.HandleFunc("/api/book/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/api/book/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	return r
}

func genreRouter(svc *MockGenreService) *mux.Router {
	h := httpapi.NewGenreHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/genre/popular", h.Popular).Methods(http.MethodGet)
	r.HandleFunc("/api/genre/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/api/genre/{id:[0-9]+}/books", h.ListBooks).Methods(http.MethodGet)
	return r
}

func TestBookHandler_Search(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBookService)
		router := bookRouter(svc)

		svc.On("Search", mock.Anything, "dune").Return([]domain.BookDetail{
			{Book: domain.Book{ID: 1, Name: "Dune"}, AuthorName: "Frank Herbert"},
		}, nil)

		rec, body := doJSON(t, router, http.MethodGet, "/api/book/search?query=dune", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["booksList"], 1)
	})

	t.Run("Missing Query", func(t *testing.T) {
		svc := new(MockBookService)
		router := bookRouter(svc)

		svc.On("Search", mock.Anything, "").Return(nil, domain.ErrInvalidInput)

		rec, body := doJSON(t, router, http.MethodGet, "/api/book/search", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
	})
}

func TestGenreHandler_ListBooks(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockGenreService)
		router := genreRouter(svc)

		svc.On("ListBooks", mock.Anything, int32(2)).Return(
			&domain.Genre{ID: 2, Name: "Science Fiction"},
			[]domain.BookDetail{{Book: domain.Book{ID: 1, Name: "Dune"}}},
			nil)

		rec, body := doJSON(t, router, http.MethodGet, "/api/genre/2/books", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, body["genre"])
		assert.Len(t, body["books"], 1)
	})

	t.Run("Genre Not Found", func(t *testing.T) {
		svc := new(MockGenreService)
		router := genreRouter(svc)

		svc.On("ListBooks", mock.Anything, int32(99)).Return(nil, nil, domain.ErrGenreNotFound)

		rec, _ := doJSON(t, router, http.MethodGet, "/api/genre/99/books", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGenreHandler_Popular(t *testing.T) {
	t.Run("Custom Limit", func(t *testing.T) {
		svc := new(MockGenreService)
		router := genreRouter(svc)

		svc.On("ListPopular", mock.Anything, 3).Return([]domain.GenreWithCount{
			{Genre: domain.Genre{ID: 2, Name: "Science Fiction"}, BookCount: 12},
		}, nil)

		rec, body := doJSON(t, router, http.MethodGet, "/api/genre/popular?limit=3", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body["popularGenres"], 1)
	})

	t.Run("Bad Limit", func(t *testing.T) {
		svc := new(MockGenreService)
		router := genreRouter(svc)

		rec, _ := doJSON(t, router, http.MethodGet, "/api/genre/popular?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ListPopular")
	})
}

func TestGenreHandler_Search(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockGenreService)
		router := genreRouter(svc)

		svc.On("Search", mock.Anything, "fic").Return([]domain.GenreWithCount{
			{Genre: domain.Genre{ID: 2, Name: "Science Fiction"}, BookCount: 12},
		}, nil)

		rec, body := doJSON(t, router, http.MethodGet, "/api/genre/search?query=fic", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body["genresList"], 1)
	})

	t.Run("Missing Query", func(t *testing.T) {
		svc := new(MockGenreService)
		router := genreRouter(svc)

		svc.On("Search", mock.Anything, "").Return(nil, domain.ErrInvalidInput)

		rec, _ := doJSON(t, router, http.MethodGet, "/api/genre/search", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
