package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/utils"
)

// TestimonialRepository provides data access methods for the testimonials table.
type TestimonialRepository struct {
	db *sqlx.DB
}

// NewTestimonialRepository creates a new TestimonialRepository.
func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

const testimonialColumns = `id, name, company, location, text, rating, published, created_at, updated_at`

// ListPublished returns published testimonials, newest first.
func (r *TestimonialRepository) ListPublished(ctx context.Context) ([]*models.Testimonial, error) {
	var items []*models.Testimonial
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE published = TRUE
		ORDER BY created_at DESC
	`)
	return items, err
}

// ListAll returns every testimonial including unpublished ones.
func (r *TestimonialRepository) ListAll(ctx context.Context) ([]*models.Testimonial, error) {
	var items []*models.Testimonial
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+testimonialColumns+`
		FROM testimonials
		ORDER BY created_at DESC
	`)
	return items, err
}

// Create inserts a new testimonial with store-stamped timestamps.
func (r *TestimonialRepository) Create(ctx context.Context, in *models.TestimonialInput) (*models.Testimonial, error) {
	var item models.Testimonial
	err := r.db.GetContext(ctx, &item, `
		INSERT INTO testimonials (name, company, location, text, rating, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+testimonialColumns+`
	`, in.Name, in.Company, in.Location, in.Text, in.Rating, *in.Published)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces every editable field and re-stamps updated_at.
func (r *TestimonialRepository) Update(ctx context.Context, id string, in *models.TestimonialInput) (*models.Testimonial, error) {
	var item models.Testimonial
	err := r.db.GetContext(ctx, &item, `
		UPDATE testimonials
		SET name = $1, company = $2, location = $3, text = $4, rating = $5,
			published = $6, updated_at = now()
		WHERE id = $7
		RETURNING `+testimonialColumns+`
	`, in.Name, in.Company, in.Location, in.Text, in.Rating, *in.Published, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Delete removes a testimonial permanently.
func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Count returns the total number of testimonials.
func (r *TestimonialRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM testimonials`)
	return n, err
}
