package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/utils"
)

// ServiceRepository provides data access methods for the services table.
// Services are seeded at startup and only patched afterwards; there is no
// admin create or delete.
type ServiceRepository struct {
	db *sqlx.DB
}

// NewServiceRepository creates a new ServiceRepository.
func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

const serviceColumns = `id, title, description, icon, features, pricing, published, sort_order, updated_at`

// scanService scans one row, routing the TEXT[] column through pq.Array.
func scanService(row interface{ Scan(...interface{}) error }) (*models.Service, error) {
	var s models.Service
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.Icon,
		pq.Array(&s.Features),
		&s.Pricing,
		&s.Published,
		&s.Order,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) list(ctx context.Context, where string) ([]*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ` + where + ` ORDER BY sort_order ASC`
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// ListPublished returns published services in display order.
func (r *ServiceRepository) ListPublished(ctx context.Context) ([]*models.Service, error) {
	return r.list(ctx, `WHERE published = TRUE`)
}

// ListAll returns every service in display order.
func (r *ServiceRepository) ListAll(ctx context.Context) ([]*models.Service, error) {
	return r.list(ctx, ``)
}

// Create inserts a seeded service. Only the seeder calls this; the admin
// surface has no service creation.
func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO services (title, description, icon, features, pricing, published, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, updated_at
	`, s.Title, s.Description, s.Icon, pq.Array(s.Features), s.Pricing, s.Published, s.Order).
		Scan(&s.ID, &s.UpdatedAt)
}

// Update applies a partial patch: only non-nil fields are written, and
// updated_at is always re-stamped. Fields absent from the patch are left
// untouched.
func (r *ServiceRepository) Update(ctx context.Context, id string, patch *models.ServiceUpdate) (*models.Service, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	n := 1

	add := func(col string, v interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Icon != nil {
		add("icon", *patch.Icon)
	}
	if patch.Features != nil {
		add("features", pq.Array(*patch.Features))
	}
	if patch.Pricing != nil {
		add("pricing", patch.Pricing)
	}
	if patch.Published != nil {
		add("published", *patch.Published)
	}
	if patch.Order != nil {
		add("sort_order", *patch.Order)
	}

	query := fmt.Sprintf(`
		UPDATE services SET %s WHERE id = $%d
		RETURNING `+serviceColumns, strings.Join(sets, ", "), n)
	args = append(args, id)

	s, err := scanService(r.db.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Count returns the number of services.
func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM services`)
	return n, err
}
