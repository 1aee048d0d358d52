package models

import "time"

// BlogPost represents a long-form article on the public site. Drafts
// (published=false) are only visible through the admin surface.
type BlogPost struct {
	ID             string    `db:"id" json:"id"`
	Title          string    `db:"title" json:"title"`
	Slug           string    `db:"slug" json:"slug"`
	Excerpt        string    `db:"excerpt" json:"excerpt"`
	Content        string    `db:"content" json:"content"`
	Category       string    `db:"category" json:"category"`
	ReadTime       string    `db:"read_time" json:"readTime"`
	Published      bool      `db:"published" json:"published"`
	PublishDate    time.Time `db:"publish_date" json:"publishDate"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
	SEOTitle       *string   `db:"seo_title" json:"seoTitle,omitempty"`
	SEODescription *string   `db:"seo_description" json:"seoDescription,omitempty"`
}

// BlogPostInput is the editable field set for create and full-replace update.
// Timestamps are always stamped server-side; caller-supplied values are
// ignored.
type BlogPostInput struct {
	Title          string  `json:"title" binding:"required"`
	Slug           string  `json:"slug" binding:"required"`
	Excerpt        string  `json:"excerpt" binding:"required"`
	Content        string  `json:"content" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	ReadTime       string  `json:"readTime"`
	Published      *bool   `json:"published"`
	SEOTitle       *string `json:"seoTitle"`
	SEODescription *string `json:"seoDescription"`
}

// Normalize applies the defaults the site has always used for absent
// optional fields.
func (in *BlogPostInput) Normalize() {
	if in.ReadTime == "" {
		in.ReadTime = "5 min read"
	}
	if in.Published == nil {
		t := true
		in.Published = &t
	}
}
