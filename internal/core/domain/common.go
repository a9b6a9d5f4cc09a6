package domain

import "time"

// Timestamps holds the bookkeeping times shared by every persisted entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ref is a reference to another record. Repositories that populate
// references fill the display fields; otherwise only ID is set.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
}
