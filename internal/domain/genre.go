package domain

import (
	"regexp"
	"strings"
	"time"
)

type Genre struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// GenreWithCount is a genre annotated with how many books it holds, used by
// the popularity and search listings.
type GenreWithCount struct {
	Genre
	BookCount int32 `json:"bookCount"`
}

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a genre name.
func Slugify(name string) string {
	s := slugNonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
