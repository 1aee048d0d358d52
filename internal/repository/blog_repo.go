package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/utils"
)

// BlogRepository provides data access methods for the blog_posts table.
type BlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, category, read_time, published,
	publish_date, created_at, updated_at, seo_title, seo_description`

// ListPublished returns published posts, newest publish date first.
func (r *BlogRepository) ListPublished(ctx context.Context, skip, limit int) ([]*models.BlogPost, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 10
	}
	var posts []*models.BlogPost
	err := r.db.SelectContext(ctx, &posts, `
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE published = TRUE
		ORDER BY publish_date DESC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	return posts, err
}

// ListAll returns every post including drafts, newest created first.
func (r *BlogRepository) ListAll(ctx context.Context, skip, limit int) ([]*models.BlogPost, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	var posts []*models.BlogPost
	err := r.db.SelectContext(ctx, &posts, `
		SELECT `+blogColumns+`
		FROM blog_posts
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	return posts, err
}

// GetPublishedBySlug is the public lookup; drafts are invisible here.
// Slug is not unique by design, the first published match wins.
func (r *BlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, `
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE slug = $1 AND published = TRUE
		LIMIT 1
	`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. publish_date, created_at and updated_at are
// stamped by the store; caller-supplied timestamps are never honoured.
func (r *BlogRepository) Create(ctx context.Context, in *models.BlogPostInput) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, `
		INSERT INTO blog_posts (title, slug, excerpt, content, category, read_time, published, seo_title, seo_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+blogColumns+`
	`, in.Title, in.Slug, in.Excerpt, in.Content, in.Category, in.ReadTime, *in.Published, in.SEOTitle, in.SEODescription)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces every editable field and re-stamps updated_at. Blog updates
// are full-replace, unlike the partial-patch services use.
func (r *BlogRepository) Update(ctx context.Context, id string, in *models.BlogPostInput) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, category = $5,
			read_time = $6, published = $7, seo_title = $8, seo_description = $9,
			updated_at = now()
		WHERE id = $10
		RETURNING `+blogColumns+`
	`, in.Title, in.Slug, in.Excerpt, in.Content, in.Category, in.ReadTime, *in.Published, in.SEOTitle, in.SEODescription, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post permanently. A miss is reported, never swallowed.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
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

// Count returns the total number of posts including drafts.
func (r *BlogRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM blog_posts`)
	return n, err
}
