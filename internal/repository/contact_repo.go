package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/utils"
)

// ContactRepository provides data access methods for the contact_submissions table.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `id, name, email, phone, company, consultation_type, message, status, submitted_at, notes`

// Create stores a public submission with status 'new' and a store-stamped
// submission time.
func (r *ContactRepository) Create(ctx context.Context, in *models.ContactInput) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission
	err := r.db.GetContext(ctx, &sub, `
		INSERT INTO contact_submissions (name, email, phone, company, consultation_type, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+contactColumns+`
	`, in.Name, in.Email, in.Phone, in.Company, in.ConsultationType, in.Message)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// List returns all submissions, newest first.
func (r *ContactRepository) List(ctx context.Context, skip, limit int) ([]*models.ContactSubmission, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	var subs []*models.ContactSubmission
	err := r.db.SelectContext(ctx, &subs, `
		SELECT `+contactColumns+`
		FROM contact_submissions
		ORDER BY submitted_at DESC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	return subs, err
}

// Recent returns the n most recent submissions for the dashboard.
func (r *ContactRepository) Recent(ctx context.Context, n int) ([]*models.ContactSubmission, error) {
	return r.List(ctx, 0, n)
}

// UpdateStatus moves a submission through the pipeline and optionally
// replaces the admin notes.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, in *models.ContactStatusUpdate) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission
	err := r.db.GetContext(ctx, &sub, `
		UPDATE contact_submissions
		SET status = $1, notes = COALESCE($2, notes)
		WHERE id = $3
		RETURNING `+contactColumns+`
	`, in.Status, in.Notes, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// Count returns the total number of submissions.
func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM contact_submissions`)
	return n, err
}

// CountByStatus returns the number of submissions in a given pipeline state.
func (r *ContactRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM contact_submissions WHERE status = $1`, status)
	return n, err
}
