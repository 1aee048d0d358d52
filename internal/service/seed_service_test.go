package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/merrickdc/cms_api/internal/repository"
)

func newSeedService(t *testing.T) (*SeedService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return NewSeedService(
		repository.NewServiceRepository(sqlxDB),
		repository.NewTestimonialRepository(sqlxDB),
		repository.NewBlogRepository(sqlxDB),
	), mock
}

func TestSeedRun_EmptyStoreSeedsDefaults(t *testing.T) {
	svc, mock := newSeedService(t)
	now := time.Now()

	// 3 services
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM services`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`INSERT INTO services`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow("s", now))
	}

	// 3 testimonials
	testimonialCols := []string{"id", "name", "company", "location", "text", "rating", "published", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM testimonials`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`INSERT INTO testimonials`).
			WillReturnRows(sqlmock.NewRows(testimonialCols).
				AddRow("t", "N", "C", "L", "T", 5, true, now, now))
	}

	// 2 blog posts
	blogCols := []string{"id", "title", "slug", "excerpt", "content", "category", "read_time",
		"published", "publish_date", "created_at", "updated_at", "seo_title", "seo_description"}
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`INSERT INTO blog_posts`).
			WillReturnRows(sqlmock.NewRows(blogCols).
				AddRow("p", "T", "s", "E", "C", "Advice", "5 min read", true, now, now, now, nil, nil))
	}

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("seed did not match the expected 3+3+2 inserts: %v", err)
	}
}

func TestSeedRun_PopulatedStoreSeedsNothing(t *testing.T) {
	svc, mock := newSeedService(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM services`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM testimonials`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blog_posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("re-run against populated store must insert nothing: %v", err)
	}
}
