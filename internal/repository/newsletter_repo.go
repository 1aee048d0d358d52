package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// NewsletterRepository provides data access methods for the
// newsletter_subscriptions table.
type NewsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository creates a new NewsletterRepository.
func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Subscribe records an email address. Repeat subscriptions are idempotent:
// the insert is a no-op on conflict and the call still succeeds. It reports
// whether the email was already subscribed.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (already bool, err error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO newsletter_subscriptions (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
	`, email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Count returns the number of subscribers.
func (r *NewsletterRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM newsletter_subscriptions`)
	return n, err
}
