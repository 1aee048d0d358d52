package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merrickdc/cms_api/internal/repository"
)

var blogHandlerCols = []string{
	"id", "title", "slug", "excerpt", "content", "category", "read_time",
	"published", "publish_date", "created_at", "updated_at", "seo_title", "seo_description",
}

func newBlogRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	h := NewBlogHandler(repository.NewBlogRepository(sqlxDB))
	router := gin.New()
	router.GET("/api/blog", h.ListPublished)
	router.GET("/api/blog/:slug", h.GetBySlug)
	router.DELETE("/api/admin/blog/:id", h.Delete)
	return router, mock
}

func TestPublicBlogList_OnlyPublished(t *testing.T) {
	router, mock := newBlogRouter(t)

	now := time.Now()
	mock.ExpectQuery(`FROM blog_posts\s+WHERE published = TRUE`).
		WithArgs(0, 10).
		WillReturnRows(sqlmock.NewRows(blogHandlerCols).
			AddRow("p1", "T", "live-post", "E", "C", "Advice", "5 min read", true, now, now, now, nil, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "live-post")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicBlogBySlug_DraftIs404(t *testing.T) {
	router, mock := newBlogRouter(t)

	mock.ExpectQuery(`FROM blog_posts\s+WHERE slug = \$1 AND published = TRUE`).
		WithArgs("draft-post").
		WillReturnRows(sqlmock.NewRows(blogHandlerCols))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blog/draft-post", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "POST_NOT_FOUND")
}

func TestAdminBlogDelete_InvalidID(t *testing.T) {
	router, mock := newBlogRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/blog/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminBlogDelete_MissingIDIs404(t *testing.T) {
	router, mock := newBlogRouter(t)

	id := "0b2d9e64-0bd8-4c44-9f3e-6224ec0a35da"
	mock.ExpectExec(`DELETE FROM blog_posts`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/blog/"+id, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "POST_NOT_FOUND")
}
