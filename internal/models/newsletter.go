package models

import "time"

// NewsletterSubscription is keyed by email; repeat subscriptions are
// idempotent no-ops.
type NewsletterSubscription struct {
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribedAt"`
}

// NewsletterInput is the public subscription payload.
type NewsletterInput struct {
	Email string `json:"email" binding:"required,email"`
}
