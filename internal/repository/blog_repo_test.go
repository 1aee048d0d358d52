package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/utils"
)

var blogCols = []string{
	"id", "title", "slug", "excerpt", "content", "category", "read_time",
	"published", "publish_date", "created_at", "updated_at", "seo_title", "seo_description",
}

func blogRow(id, slug string, published bool, created, updated time.Time) []driver.Value {
	return []driver.Value{
		id, "Title", slug, "Excerpt", "Content", "Advice", "5 min read",
		published, created, created, updated, nil, nil,
	}
}

func TestBlogCreate_StampsEqualTimestamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(blogCols).AddRow(blogRow("p1", "hello-world", true, now, now)...)
	mock.ExpectQuery(`INSERT INTO blog_posts`).WillReturnRows(rows)

	in := &models.BlogPostInput{
		Title: "Title", Slug: "hello-world", Excerpt: "Excerpt",
		Content: "Content", Category: "Advice",
	}
	in.Normalize()

	post, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !post.CreatedAt.Equal(post.UpdatedAt) {
		t.Fatalf("fresh post should have createdAt == updatedAt, got %v / %v", post.CreatedAt, post.UpdatedAt)
	}
	expectationsMet(t, mock)
}

func TestBlogListPublished_FiltersAndSorts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(blogCols).
		AddRow(blogRow("p2", "newer", true, now, now)...).
		AddRow(blogRow("p1", "older", true, now.Add(-time.Hour), now.Add(-time.Hour))...)
	mock.ExpectQuery(`SELECT .+ FROM blog_posts\s+WHERE published = TRUE\s+ORDER BY publish_date DESC`).
		WithArgs(0, 10).
		WillReturnRows(rows)

	posts, err := repo.ListPublished(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("ListPublished error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	expectationsMet(t, mock)
}

func TestBlogGetPublishedBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM blog_posts\s+WHERE slug = \$1 AND published = TRUE`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(blogCols))

	_, err := repo.GetPublishedBySlug(context.Background(), "missing")
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestBlogUpdate_RestampsUpdatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	created := time.Now().Add(-time.Hour)
	updated := time.Now()
	rows := sqlmock.NewRows(blogCols).AddRow(blogRow("p1", "hello-world", true, created, updated)...)
	mock.ExpectQuery(`UPDATE blog_posts\s+SET .+updated_at = now\(\)`).WillReturnRows(rows)

	in := &models.BlogPostInput{
		Title: "Title", Slug: "hello-world", Excerpt: "Excerpt",
		Content: "Content", Category: "Advice",
	}
	in.Normalize()

	post, err := repo.Update(context.Background(), "p1", in)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !post.UpdatedAt.After(post.CreatedAt) {
		t.Fatalf("updatedAt should move past createdAt, got %v / %v", post.UpdatedAt, post.CreatedAt)
	}
	expectationsMet(t, mock)
}

func TestBlogDelete_MissingIDIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectExec(`DELETE FROM blog_posts WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestBlogDelete_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectExec(`DELETE FROM blog_posts WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	expectationsMet(t, mock)
}
