package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth     *AuthHandler
	Book     *BookHandler
	Author   *AuthorHandler
	Genre    *GenreHandler
	Member   *MemberHandler
	Borrowal *BorrowalHandler
	Asset    *AssetHandler

	AuthMW    *AuthMiddleware
	LoginRate *RateLimiter
}

// NewRouter wires all routes under the /api prefix. Everything except
// register, login and asset serving sits behind the session middleware.
func NewRouter(h Handlers) *mux.Router {
	root := mux.NewRouter()
	root.Use(Recovery, RequestLogging)

	api := root.PathPrefix("/api").Subrouter()

	// Public routes.
	api.Handle("/auth/register", h.LoginRate.Limit(http.HandlerFunc(h.Auth.Register))).Methods(http.MethodPost)
	api.Handle("/auth/login", h.LoginRate.Limit(http.HandlerFunc(h.Auth.Login))).Methods(http.MethodPost)
	api.HandleFunc("/assets/{key:.+}", h.Asset.Serve).Methods(http.MethodGet)

	// Session-protected routes.
	sec := api.NewRoute().Subrouter()
	sec.Use(h.AuthMW.Require)

	sec.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	sec.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet)

	sec.HandleFunc("/book", h.Book.List).Methods(http.MethodGet)
	sec.HandleFunc("/book", h.Book.Add).Methods(http.MethodPost)
	sec.HandleFunc("/book/available", h.Book.ListAvailable).Methods(http.MethodGet)
	sec.HandleFunc("/book/search", h.Book.Search).Methods(http.MethodGet)
	sec.HandleFunc("/book/{id:[0-9]+}", h.Book.Get).Methods(http.MethodGet)
	sec.HandleFunc("/book/{id:[0-9]+}", h.Book.Update).Methods(http.MethodPut)
	sec.HandleFunc("/book/{id:[0-9]+}", h.Book.Delete).Methods(http.MethodDelete)
	sec.HandleFunc("/book/{id:[0-9]+}/photo", h.Book.UploadPhoto).Methods(http.MethodPost)

	sec.HandleFunc("/author", h.Author.List).Methods(http.MethodGet)
	sec.HandleFunc("/author", h.Author.Add).Methods(http.MethodPost)
	sec.HandleFunc("/author/{id:[0-9]+}", h.Author.Get).Methods(http.MethodGet)
	sec.HandleFunc("/author/{id:[0-9]+}", h.Author.Update).Methods(http.MethodPut)
	sec.HandleFunc("/author/{id:[0-9]+}", h.Author.Delete).Methods(http.MethodDelete)

	sec.HandleFunc("/genre", h.Genre.List).Methods(http.MethodGet)
	sec.HandleFunc("/genre", h.Genre.Add).Methods(http.MethodPost)
	sec.HandleFunc("/genre/popular", h.Genre.Popular).Methods(http.MethodGet)
	sec.HandleFunc("/genre/search", h.Genre.Search).Methods(http.MethodGet)
	sec.HandleFunc("/genre/{id:[0-9]+}", h.Genre.Get).Methods(http.MethodGet)
	sec.HandleFunc("/genre/{id:[0-9]+}/books", h.Genre.ListBooks).Methods(http.MethodGet)
	sec.HandleFunc("/genre/{id:[0-9]+}", h.Genre.Update).Methods(http.MethodPut)
	sec.HandleFunc("/genre/{id:[0-9]+}", h.Genre.Delete).Methods(http.MethodDelete)

	sec.HandleFunc("/member", h.Member.List).Methods(http.MethodGet)
	sec.HandleFunc("/member", h.Member.Add).Methods(http.MethodPost)
	sec.HandleFunc("/member/{id:[0-9]+}", h.Member.Get).Methods(http.MethodGet)
	sec.HandleFunc("/member/{id:[0-9]+}", h.Member.Update).Methods(http.MethodPut)
	sec.HandleFunc("/member/{id:[0-9]+}", h.Member.Delete).Methods(http.MethodDelete)
	sec.HandleFunc("/member/{id:[0-9]+}/photo", h.Member.UploadPhoto).Methods(http.MethodPost)

	sec.HandleFunc("/borrowal", h.Borrowal.ListAll).Methods(http.MethodGet)
	sec.HandleFunc("/borrowal", h.Borrowal.Open).Methods(http.MethodPost)
	sec.HandleFunc("/borrowal/overdue", h.Borrowal.ListOverdue).Methods(http.MethodGet)
	sec.HandleFunc("/borrowal/stats", h.Borrowal.Stats).Methods(http.MethodGet)
	sec.HandleFunc("/borrowal/member/{memberId:[0-9]+}", h.Borrowal.ListByMember).Methods(http.MethodGet)
	sec.HandleFunc("/borrowal/{id:[0-9]+}", h.Borrowal.Get).Methods(http.MethodGet)
	sec.HandleFunc("/borrowal/{id:[0-9]+}", h.Borrowal.Update).Methods(http.MethodPut)
	sec.HandleFunc("/borrowal/{id:[0-9]+}", h.Borrowal.Delete).Methods(http.MethodDelete)
	sec.HandleFunc("/borrowal/{id:[0-9]+}/return", h.Borrowal.Return).Methods(http.MethodPut)

	return root
}
