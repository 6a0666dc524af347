package domain

import "time"

// Member is a library patron. Borrowals reference members; members do not
// authenticate against the API (see User).
type Member struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	NIC        string    `json:"nic"`
	Address    string    `json:"address"`
	Occupation string    `json:"occupation"`
	Status     string    `json:"status"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	PhotoKey   string    `json:"-"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
