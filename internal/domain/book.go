package domain

import "time"

type Book struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	ISBN        string    `json:"isbn"`
	AuthorID    *int32    `json:"author_id,omitempty"`
	GenreID     *int32    `json:"genre_id,omitempty"`
	IsAvailable bool      `json:"is_available"`
	Summary     string    `json:"summary"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	PhotoKey    string    `json:"-"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// BookDetail is a book joined with its author and genre display names.
type BookDetail struct {
	Book
	AuthorName string `json:"author_name,omitempty"`
	GenreName  string `json:"genre_name,omitempty"`
}
