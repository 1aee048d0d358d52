package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PricingMap maps a tier name to its display string (e.g. "starter" ->
// "from £1,500"). Stored as JSONB.
type PricingMap map[string]string

// Value implements driver.Valuer for database storage.
func (p PricingMap) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval.
func (p *PricingMap) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PricingMap")
	}
	return json.Unmarshal(bytes, p)
}

// Service represents a consulting offering. Services are seeded at startup
// and only ever patched through the admin surface, never created or deleted.
type Service struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Icon        string     `db:"icon" json:"icon"`
	Features    []string   `db:"features" json:"features"`
	Pricing     PricingMap `db:"pricing" json:"pricing,omitempty"`
	Published   bool       `db:"published" json:"published"`
	Order       int        `db:"sort_order" json:"order"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// ServiceUpdate is a partial patch: only non-nil fields are written.
// This is deliberately different from the blog/testimonial full-replace
// semantics.
type ServiceUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Icon        *string    `json:"icon"`
	Features    *[]string  `json:"features"`
	Pricing     PricingMap `json:"pricing"`
	Published   *bool      `json:"published"`
	Order       *int       `json:"order"`
}

// Empty reports whether the patch carries no fields at all.
func (u *ServiceUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Icon == nil &&
		u.Features == nil && u.Pricing == nil && u.Published == nil && u.Order == nil
}
