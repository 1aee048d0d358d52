package models

import "time"

// Testimonial represents a client quote shown on the public site.
type Testimonial struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Company   string    `db:"company" json:"company"`
	Location  string    `db:"location" json:"location"`
	Text      string    `db:"text" json:"text"`
	Rating    int       `db:"rating" json:"rating"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TestimonialInput is the editable field set for create and full-replace
// update. Ratings outside 1..5 are rejected at the binding layer, before
// anything reaches the repository.
type TestimonialInput struct {
	Name      string `json:"name" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Published *bool  `json:"published"`
}

// Normalize defaults published to true when the caller leaves it out.
func (in *TestimonialInput) Normalize() {
	if in.Published == nil {
		t := true
		in.Published = &t
	}
}
